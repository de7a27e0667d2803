package geo

import "math"

// earthRadiusMiles is the mean Earth radius used by the spherical formulas.
const earthRadiusMiles = 3958.8

// Point is a geographic coordinate with longitude normalized to (-180, 180].
type Point struct {
	Latitude  float64
	Longitude float64
}

// DestinationPoint computes the point reached by travelling distanceMiles from
// origin along the given initial bearing, on a spherical Earth. Returns nil
// when origin is non-finite or the distance is not positive.
func DestinationPoint(origin Point, distanceMiles, bearingDeg float64) *Point {
	if !finite(origin.Latitude) || !finite(origin.Longitude) || !finite(distanceMiles) || distanceMiles <= 0 {
		return nil
	}

	lat1 := origin.Latitude * math.Pi / 180
	lon1 := origin.Longitude * math.Pi / 180
	bearing := bearingDeg * math.Pi / 180
	angular := distanceMiles / earthRadiusMiles

	sinLat2 := math.Sin(lat1)*math.Cos(angular) + math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing)
	// Clamp against floating-point overshoot before asin.
	sinLat2 = math.Max(-1, math.Min(1, sinLat2))
	lat2 := math.Asin(sinLat2)

	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*sinLat2,
	)

	return &Point{
		Latitude:  lat2 * 180 / math.Pi,
		Longitude: NormalizeLongitude(lon2 * 180 / math.Pi),
	}
}

// NormalizeLongitude wraps a longitude in degrees into (-180, 180].
func NormalizeLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon <= -180 {
		lon += 360
	}
	return lon
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
