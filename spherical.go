// Spherical great-circle shortcuts used when the flattening is zero.
//
// Formulas from the latitude/longitude spherical geodesy notes by
// Chris Veness, www.movable-type.co.uk/scripts/latlong.html
// (MIT Licence).

package geodesic

import "math"

// haversineDistance returns the great-circle distance in meters
// between two points on a sphere of the given radius.
func haversineDistance(radius, lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	sdphi := math.Sin(radians(lat2-lat1) / 2)
	sdlam := math.Sin(radians(lon2-lon1) / 2)
	haver := sdphi*sdphi + math.Cos(phi1)*math.Cos(phi2)*sdlam*sdlam
	return radius * 2 * math.Asin(math.Sqrt(haver))
}

// bearing returns the initial great-circle bearing in degrees from
// point 1 toward point 2, normalized to (-180,180].
func bearing(lat1, lon1, lat2, lon2 float64) float64 {
	// tan(theta) = sin(dlam)*cos(phi2) /
	//              (cos(phi1)*sin(phi2) - sin(phi1)*cos(phi2)*cos(dlam))
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dlam := radians(lon2 - lon1)
	y := math.Sin(dlam) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dlam)
	return angNormalize(degrees(math.Atan2(y, x)))
}

// destination returns the point reached by travelling the given
// distance in meters from (lat1, lon1) along the initial bearing azi1,
// on a sphere of the given radius.
func destination(radius, lat1, lon1, meters, azi1 float64) (lat2, lon2 float64) {
	// sin(phi2) = sin(phi1)*cos(d) + cos(phi1)*sin(d)*cos(theta)
	// tan(dlam) = sin(theta)*sin(d)*cos(phi1) / (cos(d) - sin(phi1)*sin(phi2))
	d := meters / radius
	theta := radians(azi1)
	phi1 := radians(lat1)
	lam1 := radians(lon1)
	phi2 := math.Asin(math.Sin(phi1)*math.Cos(d) +
		math.Cos(phi1)*math.Sin(d)*math.Cos(theta))
	lam2 := lam1 + math.Atan2(math.Sin(theta)*math.Sin(d)*math.Cos(phi1),
		math.Cos(d)-math.Sin(phi1)*math.Sin(phi2))
	return degrees(phi2), angNormalize(degrees(lam2))
}
