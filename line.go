package geodesic

import "math"

// A Line represents a geodesic leaving a fixed point at a fixed
// azimuth.  It precomputes the series coefficients implied by its
// capability mask, so that repeated position queries along the same
// ray amortize the setup cost.  A Line is immutable after
// construction; distinct Lines may be used concurrently.
type Line struct {
	e    *Ellipsoid
	caps Mask

	lat1, lon1, azi1 float64
	salp1, calp1     float64

	salp0, calp0               float64
	ssig1, csig1, somg1, comg1 float64
	stau1, ctau1               float64
	k2, dn1                    float64

	a1m1, a2m1, a3c, b11, b21, b31, a4, b41 float64

	// Index zero elements of c1a, c1pa, c2a are unused; all elements
	// of c4a are used.
	c1a  [nC1 + 1]float64
	c1pa [nC1p + 1]float64
	c2a  [nC2 + 1]float64
	c3a  [nC3]float64
	c4a  [nC4]float64
}

// Line constructs a geodesic line through (lat1, lon1) with azimuth
// azi1 (all in degrees).
//
// Param caps selects the capabilities the line carries; the Latitude
// and Azimuth capabilities are always included since every position
// query needs them.  Include DistanceIn if the line is to answer
// distance-mode position queries.
func (e *Ellipsoid) Line(lat1, lon1, azi1 float64, caps Mask) *Line {
	azi1 = angNormalize(azi1)
	// Guard against underflow in salp0.
	salp1, calp1 := sincosd(angRound(azi1))
	return e.newLine(lat1, lon1, azi1, salp1, calp1, caps)
}

func (e *Ellipsoid) newLine(lat1, lon1, azi1, salp1, calp1 float64, caps Mask) *Line {
	l := &Line{
		e: e,
		// Always allow computing the latitude and azimuth.
		caps:  caps | Latitude | Azimuth | LongUnroll,
		lat1:  latFix(lat1),
		lon1:  lon1,
		azi1:  azi1,
		salp1: salp1,
		calp1: calp1,
	}
	sbet1, cbet1 := sincosd(angRound(lat1))
	sbet1 *= e.f1
	// Ensure cbet1 = +epsilon at poles.
	sbet1, cbet1 = norm(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	l.dn1 = math.Sqrt(1 + e.ep2*sq(sbet1))

	// Evaluate alp0 from sin(alp1) * cos(bet1) = sin(alp0).
	l.salp0 = salp1 * cbet1 // alp0 in [0, pi/2 - |bet1|]
	// Alt: calp0 = hypot(sbet1, calp1 * cbet1).  The following is
	// slightly better (consider the case salp1 = 0).
	l.calp0 = math.Hypot(calp1, salp1*sbet1)
	// Evaluate sig with tan(bet1) = tan(sig1) * cos(alp1).
	// sig = 0 is nearest northward crossing of equator.
	// With bet1 = 0, alp1 = pi/2, we have sig1 = 0 (if salp1 = 1).
	// With bet1 =  pi/2, alp1 = -pi, sig1 =  pi/2
	// With bet1 = -pi/2, alp1 =  0 , sig1 = -pi/2
	// Evaluate omg1 with tan(omg1) = sin(alp0) * tan(sig1).
	// With alp0 in (0, pi/2], quadrants for sig and omg coincide.
	// No atan2(0,0) ambiguity at poles since cbet1 = +epsilon.
	// With alp0 = 0, omg1 = 0 for alp1 = 0, omg1 = pi for alp1 = pi.
	l.ssig1 = sbet1
	l.somg1 = l.salp0 * sbet1
	if sbet1 != 0 || calp1 != 0 {
		l.csig1 = cbet1 * calp1
	} else {
		l.csig1 = 1
	}
	l.comg1 = l.csig1
	l.ssig1, l.csig1 = norm(l.ssig1, l.csig1) // sig1 in (-pi, pi]
	// norm(somg1, comg1) -- don't need to normalize!

	l.k2 = sq(l.calp0) * e.ep2
	eps := l.k2 / (2*(1+math.Sqrt(1+l.k2)) + l.k2)

	if l.caps&capC1 != 0 {
		l.a1m1 = a1m1f(eps)
		c1f(eps, l.c1a[:])
		l.b11 = sinCosSeries(true, l.ssig1, l.csig1, l.c1a[:])
		s, c := math.Sincos(l.b11)
		// tau1 = sig1 + B11
		l.stau1 = l.ssig1*c + l.csig1*s
		l.ctau1 = l.csig1*c - l.ssig1*s
		// Not necessary because c1pa reverts c1a:
		//   b11 = -sinCosSeries(true, stau1, ctau1, c1pa)
	}
	if l.caps&capC1p != 0 {
		c1pf(eps, l.c1pa[:])
	}
	if l.caps&capC2 != 0 {
		l.a2m1 = a2m1f(eps)
		c2f(eps, l.c2a[:])
		l.b21 = sinCosSeries(true, l.ssig1, l.csig1, l.c2a[:])
	}
	if l.caps&capC3 != 0 {
		e.c3f(eps, l.c3a[:])
		l.a3c = -e.f * l.salp0 * e.a3f(eps)
		l.b31 = sinCosSeries(true, l.ssig1, l.csig1, l.c3a[:])
	}
	if l.caps&capC4 != 0 {
		e.c4f(eps, l.c4a[:])
		// Multiplier = a^2 * e^2 * cos(alpha0) * sin(alpha0).
		l.a4 = sq(e.a) * l.calp0 * l.salp0 * e.e2
		l.b41 = sinCosSeries(false, l.ssig1, l.csig1, l.c4a[:])
	}
	return l
}

// Caps returns the capabilities the line was constructed with
// (including the ones that are always present).
func (l *Line) Caps() Mask { return l.caps }

// Lat1 returns the latitude of the line's base point (degrees).
func (l *Line) Lat1() float64 { return l.lat1 }

// Lon1 returns the longitude of the line's base point (degrees).
func (l *Line) Lon1() float64 { return l.lon1 }

// Azi1 returns the azimuth of the line at its base point (degrees).
func (l *Line) Azi1() float64 { return l.azi1 }

// Position computes the point a distance s12 (meters) along the line.
// The line must have been constructed with the DistanceIn capability.
func (l *Line) Position(s12 float64) Result {
	return l.GenPosition(false, s12, Standard)
}

// ArcPosition computes the point an arc length a12 (degrees) along
// the line.
func (l *Line) ArcPosition(a12 float64) Result {
	return l.GenPosition(true, a12, Standard|Distance)
}

// GenPosition computes the position along the line described either
// by a distance in meters (arcMode false) or by an arc length on the
// auxiliary sphere in degrees (arcMode true), producing the
// quantities selected by outmask.
//
// If arcMode is false and the line lacks the DistanceIn capability,
// the returned Result is zero except for A12 = NaN; the line remains
// valid for arc-mode queries.
func (l *Line) GenPosition(arcMode bool, s12a12 float64, outmask Mask) Result {
	var r Result
	outmask &= l.caps & outMask
	if !(arcMode || l.caps&(outMask&DistanceIn) != 0) {
		// Impossible distance-mode request.
		r.A12 = math.NaN()
		return r
	}

	var sig12, ssig12, csig12, b12, ab1 float64
	if arcMode {
		// Interpret s12a12 as a spherical arc length.
		sig12 = radians(s12a12)
		ssig12, csig12 = sincosd(s12a12)
	} else {
		// Interpret s12a12 as a distance.
		tau12 := s12a12 / (l.e.b * (1 + l.a1m1))
		s, c := math.Sincos(tau12)
		// tau2 = tau1 + tau12
		b12 = -sinCosSeries(true,
			l.stau1*c+l.ctau1*s, l.ctau1*c-l.stau1*s, l.c1pa[:])
		sig12 = tau12 - (b12 - l.b11)
		ssig12, csig12 = math.Sincos(sig12)
		if math.Abs(l.e.f) > 0.01 {
			// Reverted series is accurate to tau12^2 * f^4, good
			// enough for |f| < 1/50.  For larger flattenings fix
			// sig12 with one Newton iteration against
			//   g(sig12) = b * I1(sig12) - s12.
			ssig2 := l.ssig1*csig12 + l.csig1*ssig12
			csig2 := l.csig1*csig12 - l.ssig1*ssig12
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
			serr := (1+l.a1m1)*(sig12+(b12-l.b11)) - s12a12/l.e.b
			sig12 -= serr / math.Sqrt(1+l.k2*sq(ssig2))
			ssig12, csig12 = math.Sincos(sig12)
			// Update b12 below.
		}
	}

	// sig2 = sig1 + sig12
	ssig2 := l.ssig1*csig12 + l.csig1*ssig12
	csig2 := l.csig1*csig12 - l.ssig1*ssig12
	dn2 := math.Sqrt(1 + l.k2*sq(ssig2))
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		if arcMode || math.Abs(l.e.f) > 0.01 {
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
		}
		ab1 = (1 + l.a1m1) * (b12 - l.b11)
	}
	// sin(bet2) = cos(alp0) * sin(sig2)
	sbet2 := l.calp0 * ssig2
	// Alt: cbet2 = hypot(csig2, salp0 * ssig2)
	cbet2 := math.Hypot(l.salp0, l.calp0*csig2)
	if cbet2 == 0 {
		// I.e. salp0 = 0, csig2 = 0: break the degeneracy.
		cbet2 = tiny
		csig2 = cbet2
	}
	// tan(alp0) = cos(sig2) * tan(alp2)
	salp2 := l.salp0
	calp2 := l.calp0 * csig2 // no need to normalize

	if outmask&Distance != 0 {
		if arcMode {
			r.S12 = l.e.b * ((1+l.a1m1)*sig12 + ab1)
		} else {
			r.S12 = s12a12
		}
	}
	if outmask&Longitude != 0 {
		// tan(omg2) = sin(alp0) * tan(sig2)
		somg2 := l.salp0 * ssig2
		comg2 := csig2 // no need to normalize
		east := math.Copysign(1, l.salp0)
		var omg12 float64
		if outmask&LongUnroll != 0 {
			omg12 = east * (sig12 -
				(math.Atan2(ssig2, csig2) - math.Atan2(l.ssig1, l.csig1)) +
				(math.Atan2(east*somg2, comg2) -
					math.Atan2(east*l.somg1, l.comg1)))
		} else {
			omg12 = math.Atan2(somg2*l.comg1-comg2*l.somg1,
				comg2*l.comg1+somg2*l.somg1)
		}
		lam12 := omg12 + l.a3c*(sig12+
			(sinCosSeries(true, ssig2, csig2, l.c3a[:])-l.b31))
		lon12 := degrees(lam12)
		if outmask&LongUnroll != 0 {
			r.Lon2 = l.lon1 + lon12
		} else {
			r.Lon2 = angNormalize(angNormalize(l.lon1) + angNormalize(lon12))
		}
	}
	if outmask&Latitude != 0 {
		r.Lat2 = atan2d(sbet2, l.e.f1*cbet2)
	}
	if outmask&Azimuth != 0 {
		r.Azi1 = l.azi1
		r.Azi2 = atan2d(salp2, calp2)
	}
	if outmask&(ReducedLength|GeodesicScale) != 0 {
		b22 := sinCosSeries(true, ssig2, csig2, l.c2a[:])
		ab2 := (1 + l.a2m1) * (b22 - l.b21)
		j12 := (l.a1m1-l.a2m1)*sig12 + (ab1 - ab2)
		if outmask&ReducedLength != 0 {
			// Add parens around (csig1 * ssig2) and (ssig1 * csig2) to
			// ensure accurate cancellation for coincident points.
			r.M12 = l.e.b * ((dn2*(l.csig1*ssig2) - l.dn1*(l.ssig1*csig2)) -
				l.csig1*csig2*j12)
		}
		if outmask&GeodesicScale != 0 {
			t := l.k2 * (ssig2 - l.ssig1) * (ssig2 + l.ssig1) / (l.dn1 + dn2)
			r.MM12 = csig12 + (t*ssig2-csig2*j12)*l.ssig1/l.dn1
			r.MM21 = csig12 - (t*l.ssig1-l.csig1*j12)*ssig2/dn2
		}
	}
	if outmask&Area != 0 {
		b42 := sinCosSeries(false, ssig2, csig2, l.c4a[:])
		var salp12, calp12 float64
		if l.calp0 == 0 || l.salp0 == 0 {
			// alp12 = alp2 - alp1, used in atan2 so no need to
			// normalize.
			salp12 = salp2*l.calp1 - calp2*l.salp1
			calp12 = calp2*l.calp1 + salp2*l.salp1
		} else {
			// tan(alp) = tan(alp0) * sec(sig)
			// tan(alp2-alp1) = (tan(alp2)-tan(alp1)) / (tan(alp2)*tan(alp1)+1)
			// = calp0 * salp0 * (csig1-csig2) / (salp0^2 + calp0^2 * csig1*csig2)
			// If csig12 > 0, write
			//   csig1 - csig2 = ssig12 * (csig1 * ssig12 / (1 + csig12) + ssig1)
			// else
			//   csig1 - csig2 = csig1 * (1 - csig12) + ssig12 * ssig1
			// No need to normalize.
			if csig12 <= 0 {
				salp12 = l.calp0 * l.salp0 *
					(l.csig1*(1-csig12) + ssig12*l.ssig1)
			} else {
				salp12 = l.calp0 * l.salp0 *
					ssig12 * (l.csig1*ssig12/(1+csig12) + l.ssig1)
			}
			calp12 = sq(l.salp0) + sq(l.calp0)*l.csig1*csig2
		}
		r.SS12 = l.e.c2*math.Atan2(salp12, calp12) + l.a4*(b42-l.b41)
	}

	if arcMode {
		r.A12 = s12a12
	} else {
		r.A12 = degrees(sig12)
	}
	return r
}

// Direct solves the direct geodesic problem: starting from
// (lat1, lon1) with azimuth azi1, travel a distance of s12 meters
// (negative is allowed) and report the end point and arrival azimuth.
//
// lat1 should be in the range [-90,+90].  The returned lon2 and azi2
// are in the range [-180,+180].
func (e *Ellipsoid) Direct(lat1, lon1, azi1, s12 float64) Result {
	if e.spherical {
		var r Result
		r.Lat2, r.Lon2 = destination(e.a, lat1, lon1, s12, azi1)
		r.Azi1 = angNormalize(azi1)
		r.Azi2 = angNormalize(bearing(r.Lat2, r.Lon2, lat1, lon1) + 180)
		r.S12 = s12
		r.A12 = degrees(s12 / e.a)
		return r
	}
	return e.GenDirect(lat1, lon1, azi1, false, s12, Standard)
}

// ArcDirect solves the direct problem in terms of a spherical arc
// length a12 (degrees) instead of a distance.
func (e *Ellipsoid) ArcDirect(lat1, lon1, azi1, a12 float64) Result {
	return e.GenDirect(lat1, lon1, azi1, true, a12, Standard|Distance)
}

// GenDirect is the general form of the direct problem, computing only
// the quantities selected by outmask.  If arcMode is false, s12a12 is
// a distance in meters; otherwise it is an arc length in degrees.
func (e *Ellipsoid) GenDirect(lat1, lon1, azi1 float64,
	arcMode bool, s12a12 float64, outmask Mask) Result {
	caps := outmask
	if !arcMode {
		// Automatically supply DistanceIn.
		caps |= DistanceIn
	}
	l := e.Line(lat1, lon1, azi1, caps)
	return l.GenPosition(arcMode, s12a12, outmask)
}
