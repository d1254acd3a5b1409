package planner

import (
	"math"
	"testing"

	"tour-planner/models"
)

func TestGroupByCity(t *testing.T) {
	grouped := GroupByCity(fixtureCatalog())

	if len(grouped) != 2 {
		t.Fatalf("Expected 2 cities, got %d", len(grouped))
	}
	if len(grouped["Выборг"]) != 7 {
		t.Errorf("Expected 7 Выборг places, got %d", len(grouped["Выборг"]))
	}
	if len(grouped["Гатчина"]) != 1 {
		t.Errorf("Expected 1 Гатчина place, got %d", len(grouped["Гатчина"]))
	}
}

func TestCityCenter(t *testing.T) {
	places := []models.Place{
		{Lat: 60.0, Lon: 28.0},
		{Lat: 61.0, Lon: 30.0},
	}

	lat, lon := CityCenter(places)

	if math.Abs(lat-60.5) > 1e-9 || math.Abs(lon-29.0) > 1e-9 {
		t.Errorf("Expected centroid (60.5, 29.0), got (%f, %f)", lat, lon)
	}
}

func TestRankCities_MorePlacesWins(t *testing.T) {
	// Arrange: apply the planning filters first, as the assembler does.
	byBudget := FilterBudget(FilterAccessible(ExcludePlaceholders(fixtureCatalog()), models.MOBILITY_STRICT), models.BUDGET_ECONOMY)

	// Act
	ranked := RankCities(byBudget)

	// Assert: Выборг has more eligible places even though Гатчина is closer.
	if len(ranked) != 2 {
		t.Fatalf("Expected 2 ranked cities, got %d", len(ranked))
	}
	if ranked[0].City != "Выборг" {
		t.Errorf("Expected Выборг first, got %s", ranked[0].City)
	}
	if ranked[0].Count != 4 {
		t.Errorf("Expected 4 eligible Выборг places, got %d", ranked[0].Count)
	}
}

func TestRankCities_DistanceBreaksCountTies(t *testing.T) {
	// Arrange: two single-place cities, Гатчина much closer to the home base.
	places := []models.Place{
		{ID: "far", CityRu: "Выборг", CityEn: "Vyborg", Lat: 60.7158, Lon: 28.7290, AvgVisitMinutes: 60},
		{ID: "near", CityRu: "Гатчина", CityEn: "Gatchina", Lat: 59.5636, Lon: 30.1077, AvgVisitMinutes: 60},
	}

	ranked := RankCities(places)

	if ranked[0].City != "Гатчина" {
		t.Errorf("Expected the closer city first on a count tie, got %s", ranked[0].City)
	}
}

func TestRankCities_NameBreaksFullTies(t *testing.T) {
	// Two cities at the same coordinate with the same count sort by name.
	places := []models.Place{
		{ID: "b", CityRu: "Б-город", Lat: 60.0, Lon: 30.0, AvgVisitMinutes: 60},
		{ID: "a", CityRu: "А-город", Lat: 60.0, Lon: 30.0, AvgVisitMinutes: 60},
	}

	ranked := RankCities(places)

	if ranked[0].City != "А-город" {
		t.Errorf("Expected name ascending on a full tie, got %s", ranked[0].City)
	}
}
