package geodesic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// angClose asserts that two angles in degrees agree to within tol,
// treating values across the +/-180 seam as equal.
func angClose(t *testing.T, want, got, tol float64) {
	t.Helper()
	d, _ := angDiff(want, got)
	assert.InDelta(t, 0, d, tol, "want %v, got %v", want, got)
}

func TestInverseTokyoBaku(t *testing.T) {
	r := WGS84.Inverse(35.6894, 139.6916, 40.4349504, 49.867623)
	assert.InDelta(t, 7539893.0722842, r.S12, 1e-4)
	assert.InDelta(t, -55.3823886, r.Azi1, 1e-6)
	assert.InDelta(t, -118.6075489, r.Azi2, 1e-6)
	assert.InDelta(t, r.A12, degrees(r.S12/WGS84.Radius()), 0.5)
}

func TestInverseWellingtonSalamanca(t *testing.T) {
	// Nearly antipodal pair; exercises the astroid starting guess.
	r := WGS84.Inverse(-41.32, 174.81, 40.96, -5.50)
	assert.InDelta(t, 19959679.267, r.S12, 1e-3)
	assert.InDelta(t, 161.067669986, r.Azi1, 1e-6)
	assert.InDelta(t, 18.825195123, r.Azi2, 1e-6)
}

func TestInverseMeridian(t *testing.T) {
	// Equator to pole along a meridian: the quarter meridian.
	r := WGS84.Inverse(0, 0, 90, 0)
	assert.InDelta(t, 10001965.7293, r.S12, 1e-3)
	assert.InDelta(t, 0, r.Azi1, 1e-9)
	assert.InDelta(t, 90, r.A12, 0.2)
}

func TestInverseEquatorial(t *testing.T) {
	// For short enough equatorial arcs the geodesic follows the
	// equator, so s12 = a * lon12 in radians.
	r := WGS84.Inverse(0, 0, 0, 90)
	assert.InDelta(t, WGS84.Radius()*math.Pi/2, r.S12, 1e-6)
	assert.InDelta(t, 90, r.Azi1, 1e-9)
	assert.InDelta(t, 90, r.Azi2, 1e-9)
}

func TestInverseCoincident(t *testing.T) {
	r := WGS84.Inverse(30, 40, 30, 40)
	assert.InDelta(t, 0, r.S12, 1e-9)
	assert.False(t, math.IsNaN(r.Azi1))
	assert.False(t, math.IsNaN(r.Azi2))
}

func TestInverseAntipodalSphere(t *testing.T) {
	// On a sphere antipodal points admit infinitely many geodesics;
	// the solver still settles on one with a half-circumference
	// distance.
	e := NewEllipsoid(6371000, 0)
	r := e.Inverse(0, 0, 0, 180)
	assert.InDelta(t, 180, r.A12, 1e-9)
	assert.InDelta(t, math.Pi*6371000, r.S12, 1e-6)
}

func TestDirectRoundTrip(t *testing.T) {
	cases := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{35.6894, 139.6916, 40.4349504, 49.867623},
		{-41.32, 174.81, 40.96, -5.50},
		{0, 0, 0.5, 179.5},
		{89.9, 10, -80, -170},
		{-30.2, 60.5, -30.2, 60.6},
	}
	for _, c := range cases {
		inv := WGS84.Inverse(c.lat1, c.lon1, c.lat2, c.lon2)
		dir := WGS84.Direct(c.lat1, c.lon1, inv.Azi1, inv.S12)
		assert.InDelta(t, c.lat2, dir.Lat2, 1e-8)
		angClose(t, c.lon2, dir.Lon2, 1e-8)
		angClose(t, inv.Azi2, dir.Azi2, 1e-8)
	}
}

func TestDirectTokyoBaku(t *testing.T) {
	r := WGS84.Direct(35.6894, 139.6916, -55.3823886, 7539893.072)
	assert.InDelta(t, 40.4349504, r.Lat2, 1e-5)
	assert.InDelta(t, 49.867623, r.Lon2, 1e-5)

	// Walking back from the far end reproduces the start point.
	back := WGS84.Direct(40.4349504, 49.867623, -118.6075489+180, 7539893.072)
	assert.InDelta(t, 35.6894, back.Lat2, 1e-6)
	assert.InDelta(t, 139.6916, back.Lon2, 1e-6)
}

func TestInverseSwapSymmetry(t *testing.T) {
	a := WGS84.GenInverse(35.6894, 139.6916, 40.4349504, 49.867623, All)
	b := WGS84.GenInverse(40.4349504, 49.867623, 35.6894, 139.6916, All)
	assert.InDelta(t, a.S12, b.S12, 1e-8)
	assert.InDelta(t, a.A12, b.A12, 1e-12)
	assert.InDelta(t, a.M12, b.M12, 1e-6)
	assert.InDelta(t, a.SS12, -b.SS12, 1e-2)
	angClose(t, a.Azi2+180, b.Azi1, 1e-9)
	angClose(t, a.Azi1+180, b.Azi2, 1e-9)
	assert.InDelta(t, a.MM12, b.MM21, 1e-12)
	assert.InDelta(t, a.MM21, b.MM12, 1e-12)
}

func TestGenInverseMaskDiscipline(t *testing.T) {
	full := WGS84.Inverse(35.6894, 139.6916, 40.4349504, 49.867623)
	got := WGS84.GenInverse(35.6894, 139.6916, 40.4349504, 49.867623, Distance)

	// A12 is always produced; everything else stays zero.
	want := Result{S12: full.S12, A12: full.A12}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("unrequested fields leaked (-want +got):\n%s", diff)
	}
}

func TestGenInverseLongUnroll(t *testing.T) {
	// 539.5 is 179.5 and 181 is -179, so the geodesic runs 1.5 east;
	// the unrolled lon2 tracks lon1 as given instead of wrapping.
	r := WGS84.GenInverse(0, 539.5, 0.5, 181, Standard|LongUnroll)
	assert.InDelta(t, 541, r.Lon2, 1e-9)
}

func TestNewEllipsoid(t *testing.T) {
	// An inverse flattening is accepted in place of the flattening.
	a := NewEllipsoid(6378137, 298.257223563)
	b := NewEllipsoid(6378137, 1/298.257223563)
	// The runtime reciprocal and the constant-folded one may differ by
	// an ulp.
	assert.InDelta(t, b.Flattening(), a.Flattening(), 1e-17)
	assert.False(t, a.Spherical())

	assert.InDelta(t, 5.10065621724e14, WGS84.EllipsoidArea(), 1e3)

	require.Panics(t, func() { NewEllipsoid(0, 0.1) })
	require.Panics(t, func() { NewEllipsoid(-1, 0.1) })
	require.Panics(t, func() { NewEllipsoid(6378137, 1) })
}

func TestSpherical(t *testing.T) {
	require.True(t, Globe.Spherical())
	require.Zero(t, Globe.Flattening())

	// The great-circle shortcuts and the general solver with f = 0
	// must agree.
	rng := rand.New(rand.NewSource(99))
	e := NewEllipsoid(Globe.Radius(), 0)
	for i := 0; i < 20000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180

		want := e.Inverse(lat1, lon1, lat2, lon2)
		got := Globe.Inverse(lat1, lon1, lat2, lon2)
		if !assert.InDelta(t, want.S12, got.S12, 1e-3) {
			t.Fatalf("inverse failure (%f %f %f %f)", lat1, lon1, lat2, lon2)
		}
		angClose(t, want.Azi1, got.Azi1, 1e-4)
		angClose(t, want.Azi2, got.Azi2, 1e-4)

		dir := Globe.Direct(lat1, lon1, want.Azi1, want.S12)
		assert.InDelta(t, lat2, dir.Lat2, 1e-4)
		angClose(t, lon2, dir.Lon2, 1e-4)
		angClose(t, want.Azi2, dir.Azi2, 1e-4)
	}
}
