package planner

import (
	"sort"

	"tour-planner/config"
	"tour-planner/models"
)

// CityRank is one entry of the city ranking: how many eligible places the city
// has and how far its centroid lies from the home base.
type CityRank struct {
	City       string
	Count      int
	DistanceKm float64
}

// GroupByCity buckets places by their canonical (Russian) city name.
func GroupByCity(places []models.Place) map[string][]models.Place {
	grouped := make(map[string][]models.Place)
	for _, p := range places {
		grouped[p.CityRu] = append(grouped[p.CityRu], p)
	}
	return grouped
}

// CityCenter returns the arithmetic-mean coordinate of the given places.
// Callers must never pass an empty slice.
func CityCenter(cityPlaces []models.Place) (float64, float64) {
	var latSum, lonSum float64
	for _, p := range cityPlaces {
		latSum += p.Lat
		lonSum += p.Lon
	}
	n := float64(len(cityPlaces))
	return latSum / n, lonSum / n
}

// RankCities orders cities by eligible place count (more first), then by
// distance from the home base (closer first), then by name for a total order.
func RankCities(places []models.Place) []CityRank {
	grouped := GroupByCity(places)

	ranking := make([]CityRank, 0, len(grouped))
	for city, cityPlaces := range grouped {
		cLat, cLon := CityCenter(cityPlaces)
		dist := HaversineKm(config.HOME_CITY_LAT, config.HOME_CITY_LON, cLat, cLon)
		ranking = append(ranking, CityRank{City: city, Count: len(cityPlaces), DistanceKm: dist})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		if ranking[i].DistanceKm != ranking[j].DistanceKm {
			return ranking[i].DistanceKm < ranking[j].DistanceKm
		}
		return ranking[i].City < ranking[j].City
	})
	return ranking
}
