package geodesic

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
)

func TestSpheroidInverse(t *testing.T) {
	s := NewSpheroid(WGS84)
	tokyo := s2.LatLngFromDegrees(35.6894, 139.6916)
	baku := s2.LatLngFromDegrees(40.4349504, 49.867623)

	s12, az1, az2 := s.Inverse(tokyo, baku)
	assert.InDelta(t, 7539893.0722842, s12, 1e-4)
	assert.InDelta(t, -55.3823886, az1, 1e-6)
	assert.InDelta(t, -118.6075489, az2, 1e-6)
}

func TestSpheroidProject(t *testing.T) {
	s := NewSpheroid(WGS84)
	tokyo := s2.LatLngFromDegrees(35.6894, 139.6916)

	got := s.Project(tokyo, 7539893.072, -55.3823886*s1.Degree)
	assert.InDelta(t, 40.4349504, got.Lat.Degrees(), 1e-5)
	assert.InDelta(t, 49.867623, got.Lng.Degrees(), 1e-5)
}

func TestSpheroidInverseBatch(t *testing.T) {
	s := NewSpheroid(WGS84)
	lls := []s2.LatLng{
		s2.LatLngFromDegrees(35.6894, 139.6916),
		s2.LatLngFromDegrees(40.4349504, 49.867623),
		s2.LatLngFromDegrees(40.96, -5.50),
	}
	points := make([]s2.Point, len(lls))
	for i, ll := range lls {
		points[i] = s2.PointFromLatLng(ll)
	}

	var want float64
	for i := 1; i < len(lls); i++ {
		s12, _, _ := s.Inverse(lls[i-1], lls[i])
		want += s12
	}
	// s2.Point round trips cost a few ulps of latitude, so compare
	// loosely.
	assert.InDelta(t, want, s.InverseBatch(points), 1e-5)
}

func TestSpheroidAreaAndPerimeter(t *testing.T) {
	s := NewSpheroid(WGS84)
	points := []s2.Point{
		s2.PointFromLatLng(s2.LatLngFromDegrees(0, 0)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(0, 90)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(90, 0)),
	}
	area, perimeter := s.AreaAndPerimeter(points)
	assert.InDelta(t, WGS84.EllipsoidArea()/8, area, 1e4)
	assert.InDelta(t, 30022685.63, perimeter, 1e2)
}

func TestSpheroidRadii(t *testing.T) {
	s := NewSpheroid(WGS84)
	assert.Equal(t, WGS84, s.Ellipsoid())
	assert.InDelta(t, 6371008.77, s.SphereRadius, 1e-2)
}
