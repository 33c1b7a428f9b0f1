package geodesic

// Mask is a bit field selecting which quantities an operation computes
// and, for Line construction, which internal series the line carries.
//
// Each output flag implies the series it needs:
//
//	Latitude       none
//	Longitude      C3
//	Azimuth        none
//	Distance       C1
//	DistanceIn     C1, C1'
//	ReducedLength  C1, C2
//	GeodesicScale  C1, C2
//	Area           C4
//
// A Line can only answer queries whose flags were present (directly or
// by implication) in the caps it was constructed with.
type Mask uint32

const (
	capNone Mask = 0
	capC1   Mask = 1 << 0
	capC1p  Mask = 1 << 1
	capC2   Mask = 1 << 2
	capC3   Mask = 1 << 3
	capC4   Mask = 1 << 4
	capAll  Mask = 0x1f

	outAll  Mask = 0x7f80
	outMask Mask = 0xff80 // includes LongUnroll

	// Empty requests no output at all.
	Empty Mask = 0

	// Latitude requests the latitude of point 2.
	Latitude Mask = 1<<7 | capNone

	// Longitude requests the longitude of point 2.
	Longitude Mask = 1<<8 | capC3

	// Azimuth requests the azimuths at the two points.
	Azimuth Mask = 1<<9 | capNone

	// Distance requests the distance s12.
	Distance Mask = 1<<10 | capC1

	// DistanceIn allows a Line to take the distance as input, i.e. to
	// answer distance-mode GenPosition queries.
	DistanceIn Mask = 1<<11 | capC1 | capC1p

	// ReducedLength requests the reduced length m12.
	ReducedLength Mask = 1<<12 | capC1 | capC2

	// GeodesicScale requests the geodesic scales M12 and M21.
	GeodesicScale Mask = 1<<13 | capC1 | capC2

	// Area requests the area S12 between the geodesic and the equator.
	Area Mask = 1<<14 | capC4

	// LongUnroll controls the treatment of longitude: when set the
	// longitude of point 2 is unrolled so that lon2-lon1 indicates how
	// often and in what direction the geodesic wraps the earth.
	LongUnroll Mask = 1 << 15

	// Standard is the default set of outputs.
	Standard = Latitude | Longitude | Azimuth | Distance

	// All requests everything except LongUnroll.
	All = outAll | capAll
)
