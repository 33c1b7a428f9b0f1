package geodesic

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// A Spheroid adapts an Ellipsoid to the s2 geometry types, so that
// code working with s2.LatLng and s2.Point can measure distances,
// project points and compute areas on the ellipsoid without
// converting coordinates by hand.
type Spheroid struct {
	e *Ellipsoid

	// SphereRadius is the radius of the sphere of equal volume,
	// useful as a scaling factor for s2 (unit sphere) measures.
	SphereRadius float64
}

// NewSpheroid wraps an Ellipsoid for use with s2 types.
func NewSpheroid(e *Ellipsoid) *Spheroid {
	a := e.a
	b := a * (1 - e.f)
	return &Spheroid{
		e:            e,
		SphereRadius: (a + a + b) / 3,
	}
}

// Ellipsoid returns the underlying ellipsoid model.
func (s *Spheroid) Ellipsoid() *Ellipsoid { return s.e }

// Inverse solves the inverse geodesic problem between two s2.LatLngs,
// returning the distance in meters and the forward azimuths at the
// two points in degrees.
func (s *Spheroid) Inverse(a, b s2.LatLng) (s12, az1, az2 float64) {
	r := s.e.Inverse(a.Lat.Degrees(), a.Lng.Degrees(),
		b.Lat.Degrees(), b.Lng.Degrees())
	return r.S12, r.Azi1, r.Azi2
}

// InverseBatch computes the total length in meters of the path
// visiting the given points in order.
//
// Computing the length edge by edge here is faster than feeding the
// points through a polyline Polygon, since only the distances are
// needed.
func (s *Spheroid) InverseBatch(points []s2.Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		a := s2.LatLngFromPoint(points[i-1])
		b := s2.LatLngFromPoint(points[i])
		r := s.e.GenInverse(a.Lat.Degrees(), a.Lng.Degrees(),
			b.Lat.Degrees(), b.Lng.Degrees(), Distance)
		total += r.S12
	}
	return total
}

// AreaAndPerimeter computes the area in square meters and the
// perimeter in meters of the polygon with the given vertices.  The
// polygon is closed automatically.
func (s *Spheroid) AreaAndPerimeter(points []s2.Point) (area, perimeter float64) {
	p := s.e.Polygon(false)
	for _, point := range points {
		ll := s2.LatLngFromPoint(point)
		p.AddPoint(ll.Lat.Degrees(), ll.Lng.Degrees())
	}
	_, perimeter, area = p.Compute(false, true)
	return area, perimeter
}

// Project returns the point reached by travelling the given distance
// in meters from the given point along the given azimuth.
func (s *Spheroid) Project(point s2.LatLng, distance float64, azimuth s1.Angle) s2.LatLng {
	r := s.e.Direct(point.Lat.Degrees(), point.Lng.Degrees(),
		azimuth.Degrees(), distance)
	return s2.LatLngFromDegrees(r.Lat2, r.Lon2)
}
