package planner

import "math"

const EARTH_RADIUS_KM = 6371.0

// Road speeds used for travel-time estimates.
const (
	INTER_CITY_SPEED_KMH = 55.0
	INTRA_CITY_SPEED_KMH = 30.0
	FALLBACK_SPEED_KMH   = 50.0
)

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EARTH_RADIUS_KM * c
}

// MinutesFromKm estimates travel time at the given road speed, never below one
// minute. A non-positive speed falls back to FALLBACK_SPEED_KMH.
func MinutesFromKm(distanceKm, roadSpeedKmh float64) int {
	if roadSpeedKmh <= 0 {
		roadSpeedKmh = FALLBACK_SPEED_KMH
	}
	minutes := int(math.Round(distanceKm / roadSpeedKmh * 60.0))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// roundKm rounds a distance to one decimal place for rendering.
func roundKm(distanceKm float64) float64 {
	return math.Round(distanceKm*10) / 10
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
