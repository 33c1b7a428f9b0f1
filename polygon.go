package geodesic

import "math"

// A Polygon accumulates the perimeter and area of a geodesic polygon
// as its vertices are added one at a time.  The sides of the polygon
// are geodesics, the vertices are given in degrees, and the area is
// signed: counter-clockwise traversal counts as positive.
//
// Polygons with nearly antipodal adjacent vertices are ambiguous (two
// geodesics of nearly equal length connect such points) and should be
// avoided.  Otherwise vertices may be arbitrary, including polygons
// that encircle a pole or wrap the earth in longitude.
type Polygon struct {
	e        *Ellipsoid
	polyline bool
	area0    float64
	mask     Mask

	areaAcc  accumulator
	perimAcc accumulator

	num        int
	crossings  int
	lat0, lon0 float64
	lat1, lon1 float64
}

// Polygon starts a new, empty polygon on the ellipsoid.  If polyline
// is true only the length of the path is accumulated and area-related
// work is skipped.
func (e *Ellipsoid) Polygon(polyline bool) *Polygon {
	mask := Latitude | Longitude | Distance
	if !polyline {
		mask |= Area | LongUnroll
	}
	p := &Polygon{
		e:        e,
		polyline: polyline,
		area0:    e.EllipsoidArea(),
		mask:     mask,
	}
	p.Clear()
	return p
}

// Clear resets the polygon to the empty state, allowing it to be
// reused.
func (p *Polygon) Clear() {
	p.num = 0
	p.crossings = 0
	p.areaAcc.set(0)
	p.perimAcc.set(0)
	p.lat0, p.lon0 = 0, 0
	p.lat1, p.lon1 = 0, 0
}

// AddPoint adds the vertex (lat, lon), in degrees, connecting it to
// the previous vertex with a geodesic.
func (p *Polygon) AddPoint(lat, lon float64) {
	lat = latFix(lat)
	if p.num == 0 {
		p.lat0, p.lon0 = lat, lon
	} else {
		r := p.e.GenInverse(p.lat1, p.lon1, lat, lon, p.mask)
		p.perimAcc.add(r.S12)
		if !p.polyline {
			p.areaAcc.add(r.SS12)
			p.crossings += transit(p.lon1, lon)
		}
	}
	p.lat1, p.lon1 = lat, lon
	p.num++
}

// AddEdge adds the next vertex by an edge: travel s meters from the
// current vertex at azimuth azi (degrees).  At least one vertex must
// have been added with AddPoint first.
func (p *Polygon) AddEdge(azi, s float64) {
	if p.num == 0 {
		panic("geodesic: AddEdge called before AddPoint")
	}
	r := p.e.GenDirect(p.lat1, p.lon1, azi, false, s, p.mask)
	p.perimAcc.add(s)
	if !p.polyline {
		p.areaAcc.add(r.SS12)
		p.crossings += transitDirect(p.lon1, r.Lon2)
	}
	p.lat1, p.lon1 = r.Lat2, angNormalize(r.Lon2)
	p.num++
}

// Compute closes the polygon against its first vertex and returns the
// number of vertices, the perimeter in meters and the area in square
// meters (zero for a polyline).
//
// If reverse is true, clockwise traversal counts as positive instead
// of counter-clockwise.  If sign is true the area is returned signed
// in (-area0/2, area0/2], where area0 is the total area of the
// ellipsoid; otherwise it is reduced to [0, area0).
//
// The accumulated state is unchanged, so more vertices can be added
// afterwards.
func (p *Polygon) Compute(reverse, sign bool) (num int, perimeter, area float64) {
	if p.num < 2 {
		return p.num, 0, 0
	}
	if p.polyline {
		return p.num, p.perimAcc.sum(), 0
	}
	r := p.e.GenInverse(p.lat1, p.lon1, p.lat0, p.lon0, p.mask)
	areaAcc := p.areaAcc
	areaAcc.add(r.SS12)
	crossings := p.crossings + transit(p.lon1, p.lon0)
	return p.num, p.perimAcc.sumWith(r.S12),
		areaReduce(&areaAcc, p.area0, crossings, reverse, sign)
}

// TestPoint returns what Compute would return if the vertex
// (lat, lon) were added, without changing the polygon.
func (p *Polygon) TestPoint(lat, lon float64, reverse, sign bool) (num int, perimeter, area float64) {
	if p.num == 0 {
		return 1, 0, 0
	}
	perimAcc := p.perimAcc
	areaAcc := p.areaAcc
	crossings := p.crossings
	edges := [2][4]float64{
		{p.lat1, p.lon1, lat, lon},
		{lat, lon, p.lat0, p.lon0},
	}
	n := 2
	if p.polyline {
		n = 1
	}
	for _, edge := range edges[:n] {
		r := p.e.GenInverse(edge[0], edge[1], edge[2], edge[3], p.mask)
		perimAcc.add(r.S12)
		if !p.polyline {
			areaAcc.add(r.SS12)
			crossings += transit(edge[1], edge[3])
		}
	}
	if p.polyline {
		return p.num + 1, perimAcc.sum(), 0
	}
	return p.num + 1, perimAcc.sum(),
		areaReduce(&areaAcc, p.area0, crossings, reverse, sign)
}

// TestEdge returns what Compute would return if the edge (azi, s)
// were added, without changing the polygon.  The polygon must be
// non-empty.
func (p *Polygon) TestEdge(azi, s float64, reverse, sign bool) (num int, perimeter, area float64) {
	if p.num == 0 {
		return 0, math.NaN(), math.NaN()
	}
	perimAcc := p.perimAcc
	perimAcc.add(s)
	if p.polyline {
		return p.num + 1, perimAcc.sum(), 0
	}
	areaAcc := p.areaAcc
	crossings := p.crossings

	rd := p.e.GenDirect(p.lat1, p.lon1, azi, false, s, p.mask)
	areaAcc.add(rd.SS12)
	crossings += transitDirect(p.lon1, rd.Lon2)
	lat, lon := rd.Lat2, angNormalize(rd.Lon2)

	ri := p.e.GenInverse(lat, lon, p.lat0, p.lon0, p.mask)
	perimAcc.add(ri.S12)
	areaAcc.add(ri.SS12)
	crossings += transit(lon, p.lon0)

	return p.num + 1, perimAcc.sum(),
		areaReduce(&areaAcc, p.area0, crossings, reverse, sign)
}

// CurrentPoint returns the most recently added vertex.
func (p *Polygon) CurrentPoint() (lat, lon float64) {
	return p.lat1, p.lon1
}

// NumPoints returns the number of vertices added so far.
func (p *Polygon) NumPoints() int { return p.num }

// transit counts crossings of the prime meridian in the easterly
// direction for the geodesic from lon1 to lon2, taking the shorter
// path in longitude.
func transit(lon1, lon2 float64) int {
	lon12, _ := angDiff(lon1, lon2)
	lon1 = angNormalize(lon1)
	lon2 = angNormalize(lon2)
	switch {
	case lon12 > 0 && ((lon1 < 0 && lon2 >= 0) || (lon1 > 0 && lon2 == 0)):
		return 1
	case lon12 < 0 && lon1 >= 0 && lon2 < 0:
		return -1
	default:
		return 0
	}
}

// transitDirect is like transit, but for unrolled longitudes, where
// the full multiple-wrap history of the edge matters.
func transitDirect(lon1, lon2 float64) int {
	lon1 = remainder(lon1, 720)
	lon2 = remainder(lon2, 720)
	u, v := 0, 0
	if !(lon2 >= 0 && lon2 < 360) {
		u = 1
	}
	if !(lon1 >= 0 && lon1 < 360) {
		v = 1
	}
	return u - v
}

// areaReduce converts the accumulated spherical excess into the final
// area, accounting for pole encirclement and the requested sign
// conventions.
func areaReduce(area *accumulator, area0 float64, crossings int, reverse, sign bool) float64 {
	area.remainderMod(area0)
	if crossings&1 != 0 {
		if area.sum() < 0 {
			area.add(area0 / 2)
		} else {
			area.add(-area0 / 2)
		}
	}
	// Area is with the clockwise sense; negate for the default
	// counter-clockwise convention.
	if !reverse {
		area.negate()
	}
	if sign {
		// Put the result in (-area0/2, area0/2].
		if area.sum() > area0/2 {
			area.add(-area0)
		} else if area.sum() <= -area0/2 {
			area.add(area0)
		}
	} else {
		// Put the result in [0, area0).
		if area.sum() >= area0 {
			area.add(-area0)
		} else if area.sum() < 0 {
			area.add(area0)
		}
	}
	return 0 + area.sum()
}
