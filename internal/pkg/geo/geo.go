package geo

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle distance.
const earthRadiusMeters = 6371000.0

// DistanceMeters menghitung jarak haversine antara dua titik koordinat dalam Meter.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	// Floating rounding can push a slightly outside [0,1], which would make
	// Sqrt(1-a) NaN for identical or antipodal points.
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Classification is the result of a geofence check.
type Classification struct {
	WithinRadius bool
	// DistanceMeters is rounded to two decimals for display. The radius
	// comparison uses the unrounded distance so a point on the boundary
	// cannot flip in or out from rounding alone.
	DistanceMeters float64
}

// Classify checks whether a point falls inside a circular geofence.
// The boundary itself counts as inside.
func Classify(lat, lon, centerLat, centerLon, radiusMeters float64) Classification {
	distance := DistanceMeters(lat, lon, centerLat, centerLon)
	return Classification{
		WithinRadius:   distance <= radiusMeters,
		DistanceMeters: math.Round(distance*100) / 100,
	}
}

// IsAccuracyAcceptable reports whether a GPS fix is precise enough to trust.
// The ceiling is inclusive.
func IsAccuracyAcceptable(accuracyMeters, maxAccuracyMeters float64) bool {
	return accuracyMeters <= maxAccuracyMeters
}
