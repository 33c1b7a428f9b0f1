package geodesic

import "math"

// Low level angle and floating point helpers shared by the solvers.
// The algebra follows GeographicLib; accuracy near the singular points
// (poles, +/-180, tiny angles) depends on the exact sequencing of the
// operations here, so resist the urge to simplify.

func sq(x float64) float64 { return x * x }

// atanh with odd symmetry forced, built on log1p so that it stays
// accurate for small |x|.
func atanh(x float64) float64 {
	y := math.Abs(x)
	y = math.Log1p(2*y/(1-y)) / 2
	if x < 0 {
		return -y
	}
	return y
}

// polyval evaluates a polynomial of order n with coefficients p[s:] by
// Horner's method.
func polyval(n int, p []float64, s int, x float64) float64 {
	var y float64
	if n >= 0 {
		y = p[s]
	}
	for ; n > 0; n-- {
		s++
		y = y*x + p[s]
	}
	return y
}

// sum returns the error-free transformation of u+v: s is the rounded
// sum and t the exact residual, so u+v = s+t exactly.
func sum(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// remainder reduces x modulo y to [-y/2, y/2].
func remainder(x, y float64) float64 {
	z := math.NaN()
	if !math.IsInf(x, 0) {
		z = math.Mod(x, y)
	}
	switch {
	case z < -y/2:
		return z + y
	case z < y/2:
		return z
	default:
		return z - y
	}
}

// angNormalize reduces an angle in degrees to (-180,180].
func angNormalize(x float64) float64 {
	y := remainder(x, 360)
	if y == -180 {
		return 180
	}
	return y
}

// angDiff computes y-x reduced to [-180,180], returning the rounded
// difference and the truncation error. The compensated subtraction
// keeps the result accurate even when x and y differ by nearly 360.
func angDiff(x, y float64) (d, t float64) {
	d, t = sum(angNormalize(-x), angNormalize(y))
	d = angNormalize(d)
	if d == 180 && t > 0 {
		return sum(-180, t)
	}
	return sum(d, t)
}

// angRound rounds an angle in degrees so that values below 1/16 of a
// degree from zero underflow to zero. This avoids having to deal with
// near singular cases when x is non-zero but tiny (e.g. 1e-200); the
// smallest surviving gap is 1/2^57 deg, about 0.7 pm on the earth.
func angRound(x float64) float64 {
	const z = 1 / 16.0
	y := math.Abs(x)
	// The compiler mustn't "simplify" z - (z - y) to y.
	if y < z {
		y = z - (z - y)
	}
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -y
	default:
		return y
	}
}

func radians(deg float64) float64 { return deg * (math.Pi / 180) }
func degrees(rad float64) float64 { return rad * (180 / math.Pi) }

// sincosd computes sine and cosine of x in degrees, exact at the
// quadrant points.
func sincosd(x float64) (sinx, cosx float64) {
	r := math.NaN()
	if !math.IsInf(x, 0) {
		r = math.Mod(x, 360)
	}
	q := 0
	if !math.IsNaN(r) {
		q = int(math.Round(r / 90))
	}
	r -= 90 * float64(q)
	s, c := math.Sincos(radians(r))
	switch q & 3 {
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	if x == 0 {
		s = x // preserve the sign of +/-0
	}
	return s, c
}

// atan2d computes atan2(y,x) in degrees, keeping the quadrant
// boundaries exact by reducing the arguments to the first octant.
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
		q = 2
	}
	if x < 0 {
		x = -x
		q++
	}
	ang := degrees(math.Atan2(y, x))
	switch q {
	case 1:
		if y >= 0 {
			ang = 180 - ang
		} else {
			ang = -180 - ang
		}
	case 2:
		ang = 90 - ang
	case 3:
		ang = -90 + ang
	}
	return ang
}

// norm normalizes a two-vector.
func norm(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	return x / r, y / r
}

// latFix replaces latitudes outside [-90,90] by NaN.
func latFix(x float64) float64 {
	if math.Abs(x) > 90 {
		return math.NaN()
	}
	return x
}
