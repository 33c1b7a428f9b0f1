package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAdditivity(t *testing.T) {
	// Splitting a geodesic at its midpoint and walking the second half
	// from there lands on the same endpoint.
	const s12 = 7539893.072
	l := WGS84.Line(35.6894, 139.6916, -55.3823886, Standard|DistanceIn)
	whole := l.Position(s12)
	mid := l.Position(s12 / 2)
	rest := WGS84.Direct(mid.Lat2, mid.Lon2, mid.Azi2, s12/2)
	assert.InDelta(t, whole.Lat2, rest.Lat2, 1e-8)
	angClose(t, whole.Lon2, rest.Lon2, 1e-8)
	angClose(t, whole.Azi2, rest.Azi2, 1e-8)
	assert.InDelta(t, whole.A12, mid.A12+rest.A12, 1e-9)
}

func TestLineArcPosition(t *testing.T) {
	// A quarter arc due north from the equator ends at the pole after
	// a quarter meridian.
	l := WGS84.Line(0, 0, 0, All)
	r := l.ArcPosition(90)
	assert.InDelta(t, 90, r.Lat2, 1e-9)
	assert.InDelta(t, 10001965.7293, r.S12, 1e-3)
	assert.Equal(t, 90.0, r.A12)
}

func TestLinePositionAgainstInverse(t *testing.T) {
	inv := WGS84.GenInverse(-41.32, 174.81, 40.96, -5.50, All)
	l := WGS84.Line(-41.32, 174.81, inv.Azi1, All|DistanceIn)
	r := l.GenPosition(false, inv.S12, All)
	assert.InDelta(t, 40.96, r.Lat2, 1e-8)
	angClose(t, -5.50, r.Lon2, 1e-8)
	angClose(t, inv.Azi2, r.Azi2, 1e-8)
	assert.InDelta(t, inv.M12, r.M12, 1e-5)
	assert.InDelta(t, inv.MM12, r.MM12, 1e-12)
	assert.InDelta(t, inv.MM21, r.MM21, 1e-12)
	assert.InDelta(t, inv.SS12, r.SS12, 1)
}

func TestLineDistanceInRequired(t *testing.T) {
	// Without DistanceIn a line cannot take a distance as input; the
	// query reports NaN arc length and leaves everything else zero.
	l := WGS84.Line(35.6894, 139.6916, -55.3823886, Standard)
	r := l.GenPosition(false, 1e6, Standard)
	require.True(t, math.IsNaN(r.A12))
	assert.Zero(t, r.Lat2)
	assert.Zero(t, r.Lon2)
	assert.Zero(t, r.S12)

	// Arc mode still works on the same line.
	r = l.GenPosition(true, 10, Latitude|Longitude)
	require.False(t, math.IsNaN(r.A12))
}

func TestLineAccessors(t *testing.T) {
	l := WGS84.Line(10, 20, 30, Standard|DistanceIn)
	assert.Equal(t, 10.0, l.Lat1())
	assert.Equal(t, 20.0, l.Lon1())
	assert.Equal(t, 30.0, l.Azi1())
	// Latitude and Azimuth are always granted.
	assert.NotZero(t, l.Caps()&Latitude)
	assert.NotZero(t, l.Caps()&Azimuth)
	assert.NotZero(t, l.Caps()&DistanceIn)
}

func TestGenDirectScalesOnSphere(t *testing.T) {
	// On a sphere the reduced length and geodesic scales have closed
	// forms: m12 = R sin(s/R), M12 = M21 = cos(s/R).
	const radius = 6371000.0
	e := NewEllipsoid(radius, 0)
	for _, s := range []float64{1e5, 1e6, 5e6, 1.2e7} {
		r := e.GenDirect(20, 30, 40, false, s,
			Distance|ReducedLength|GeodesicScale)
		assert.InDelta(t, radius*math.Sin(s/radius), r.M12, 1e-3)
		assert.InDelta(t, math.Cos(s/radius), r.MM12, 1e-12)
		assert.InDelta(t, math.Cos(s/radius), r.MM21, 1e-12)
	}
}

func TestDirectNegativeDistance(t *testing.T) {
	fwd := WGS84.Direct(35.6894, 139.6916, -55.3823886, 1e6)
	back := WGS84.Direct(fwd.Lat2, fwd.Lon2, fwd.Azi2, -1e6)
	assert.InDelta(t, 35.6894, back.Lat2, 1e-8)
	angClose(t, 139.6916, back.Lon2, 1e-8)
}

func TestGenDirectLongUnroll(t *testing.T) {
	// One and a half times around the equator.
	s := 1.5 * 2 * math.Pi * WGS84.Radius()
	r := WGS84.GenDirect(0, 0, 90, false, s, Standard|LongUnroll)
	assert.InDelta(t, 540, r.Lon2, 1e-3)
	assert.InDelta(t, 0, r.Lat2, 1e-9)
}
