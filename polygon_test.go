package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonOctantSphere(t *testing.T) {
	const radius = 6371000.0
	e := NewEllipsoid(radius, 0)
	p := e.Polygon(false)
	p.AddPoint(0, 0)
	p.AddPoint(0, 90)
	p.AddPoint(90, 0)
	num, perimeter, area := p.Compute(false, true)
	assert.Equal(t, 3, num)
	assert.InDelta(t, 3*math.Pi*radius/2, perimeter, 1e-6)
	assert.InDelta(t, math.Pi*sq(radius)/2, area, 1)
}

func TestPolygonOctantWGS84(t *testing.T) {
	p := WGS84.Polygon(false)
	p.AddPoint(0, 0)
	p.AddPoint(0, 90)
	p.AddPoint(90, 0)
	_, perimeter, area := p.Compute(false, true)
	// An octant has exactly one eighth of the total area, and its
	// perimeter is a quarter equator plus two quarter meridians.
	assert.InDelta(t, WGS84.EllipsoidArea()/8, area, 10)
	assert.InDelta(t, math.Pi*WGS84.Radius()/2+2*10001965.7293, perimeter, 1e-2)
}

func TestPolygonOrientation(t *testing.T) {
	ccw := WGS84.Polygon(false)
	ccw.AddPoint(0, 0)
	ccw.AddPoint(0, 90)
	ccw.AddPoint(90, 0)
	_, _, area := ccw.Compute(false, true)
	require.Greater(t, area, 0.0)

	// The same ring traversed backwards.
	cw := WGS84.Polygon(false)
	cw.AddPoint(90, 0)
	cw.AddPoint(0, 90)
	cw.AddPoint(0, 0)
	_, _, areaCW := cw.Compute(false, true)
	assert.InDelta(t, -area, areaCW, 1e-2)

	// reverse flips the positive sense.
	_, _, areaRev := cw.Compute(true, true)
	assert.InDelta(t, area, areaRev, 1e-2)

	// Unsigned mode reports the complement for a clockwise ring.
	_, _, areaUnsigned := cw.Compute(false, false)
	assert.InDelta(t, WGS84.EllipsoidArea()-area, areaUnsigned, 1e-2)
}

func TestPolygonPolyline(t *testing.T) {
	p := WGS84.Polygon(true)
	p.AddPoint(35.6894, 139.6916)
	p.AddPoint(40.4349504, 49.867623)
	num, perimeter, area := p.Compute(false, true)
	assert.Equal(t, 2, num)
	assert.InDelta(t, 7539893.0722842, perimeter, 1e-4)
	assert.Zero(t, area)
}

func TestPolygonEncirclesPole(t *testing.T) {
	const radius = 6371000.0
	e := NewEllipsoid(radius, 0)
	p := e.Polygon(false)
	p.AddPoint(80, 0)
	p.AddPoint(80, 90)
	p.AddPoint(80, 180)
	p.AddPoint(80, -90)
	_, perimeter, area := p.Compute(false, true)

	// The geodesic edges bulge poleward of the 80th parallel, so the
	// ring encloses less than the polar cap but is unmistakably a
	// pole-encircling ring, not a sliver: a crossings-count bug would
	// be off by half the sphere.
	cap80 := 2 * math.Pi * sq(radius) * (1 - math.Sin(radians(80)))
	require.Greater(t, area, cap80/2)
	require.Less(t, area, cap80)
	require.Less(t, perimeter, 2*math.Pi*radius*math.Cos(radians(80)))
}

func TestPolygonTestPoint(t *testing.T) {
	p := WGS84.Polygon(false)
	p.AddPoint(0, 0)
	p.AddPoint(0, 90)

	num, perimeter, area := p.TestPoint(90, 0, false, true)
	assert.Equal(t, 3, num)

	// The tentative result matches actually adding the vertex, and
	// the polygon itself is unchanged.
	assert.Equal(t, 2, p.NumPoints())
	p.AddPoint(90, 0)
	num2, perimeter2, area2 := p.Compute(false, true)
	assert.Equal(t, num, num2)
	assert.InDelta(t, perimeter2, perimeter, 1e-6)
	assert.InDelta(t, area2, area, 1e-2)
}

func TestPolygonTestEdge(t *testing.T) {
	p := WGS84.Polygon(false)
	p.AddPoint(10, 20)
	p.AddPoint(10, 30)

	num, perimeter, area := p.TestEdge(0, 1e6, false, true)
	assert.Equal(t, 3, num)
	assert.Equal(t, 2, p.NumPoints())

	p.AddEdge(0, 1e6)
	num2, perimeter2, area2 := p.Compute(false, true)
	assert.Equal(t, num, num2)
	assert.InDelta(t, perimeter2, perimeter, 1e-6)
	assert.InDelta(t, area2, area, 1e-2)
}

func TestPolygonAddEdgeMatchesAddPoint(t *testing.T) {
	byEdge := WGS84.Polygon(false)
	byEdge.AddPoint(5, 5)
	byEdge.AddEdge(30, 2e6)
	byEdge.AddEdge(120, 2e6)

	byPoint := WGS84.Polygon(false)
	byPoint.AddPoint(5, 5)
	r := WGS84.Direct(5, 5, 30, 2e6)
	byPoint.AddPoint(r.Lat2, r.Lon2)
	r = WGS84.Direct(r.Lat2, r.Lon2, 120, 2e6)
	byPoint.AddPoint(r.Lat2, r.Lon2)

	_, perimA, areaA := byEdge.Compute(false, true)
	_, perimB, areaB := byPoint.Compute(false, true)
	assert.InDelta(t, perimB, perimA, 1e-6)
	assert.InDelta(t, areaB, areaA, 1)
}

func TestPolygonClear(t *testing.T) {
	p := WGS84.Polygon(false)
	p.AddPoint(0, 0)
	p.AddPoint(0, 1)
	p.Clear()
	assert.Equal(t, 0, p.NumPoints())
	num, perimeter, area := p.Compute(false, true)
	assert.Equal(t, 0, num)
	assert.Zero(t, perimeter)
	assert.Zero(t, area)
}

func TestPolygonAddEdgeFirstPanics(t *testing.T) {
	p := WGS84.Polygon(false)
	require.Panics(t, func() { p.AddEdge(0, 1000) })
}
