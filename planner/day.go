package planner

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"tour-planner/config"
	"tour-planner/models"
	"tour-planner/util"
)

const MAX_PLACES_PER_DAY = 3
const MAX_RAINY_ALTERNATIVES = 3
const LUNCH_MINUTES = 60

// Approximate public transport cost per kilometer of the inter-city leg.
const TRANSPORT_RUB_PER_KM = 8

// Daily lunch cost per budget level.
const (
	MEALS_RUB_ECONOMY  = 400
	MEALS_RUB_STANDARD = 800
	MEALS_RUB_COMFORT  = 1200
)

// MealsCostRub returns the fixed daily lunch cost for the budget level.
func MealsCostRub(budgetLevel string) int {
	switch budgetLevel {
	case models.BUDGET_ECONOMY:
		return MEALS_RUB_ECONOMY
	case models.BUDGET_STANDARD:
		return MEALS_RUB_STANDARD
	default:
		return MEALS_RUB_COMFORT
	}
}

func transportCostRub(distanceKm float64) int {
	return int(math.Round(distanceKm * TRANSPORT_RUB_PER_KM))
}

// ChoosePlaces selects up to maxCount visitable places, preferring indoor,
// then low stairs, then low cost, then name. The sort key is total, so the
// seeded source is carried for future tie-breaks but never consulted today.
func ChoosePlaces(cityPlaces []models.Place, r *rand.Rand, maxCount int) []models.Place {
	filtered := ExcludePlaceholders(cityPlaces)

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := &filtered[i], &filtered[j]
		if a.Indoor != b.Indoor {
			return a.Indoor
		}
		if a.StairsLevel != b.StairsLevel {
			return a.StairsLevel < b.StairsLevel
		}
		if a.CostRub != b.CostRub {
			return a.CostRub < b.CostRub
		}
		return a.NameRu < b.NameRu
	})

	if len(filtered) > maxCount {
		filtered = filtered[:maxCount]
	}
	return filtered
}

// NearestNeighborOrder orders places greedily by haversine distance starting
// from the given coordinate. A heuristic Hamiltonian path, not an optimum.
func NearestNeighborOrder(places []models.Place, startLat, startLon float64) []models.Place {
	remaining := make([]models.Place, len(places))
	copy(remaining, places)

	ordered := make([]models.Place, 0, len(places))
	curLat, curLon := startLat, startLon
	for len(remaining) > 0 {
		nearest := 0
		nearestDist := HaversineKm(curLat, curLon, remaining[0].Lat, remaining[0].Lon)
		for i := 1; i < len(remaining); i++ {
			d := HaversineKm(curLat, curLon, remaining[i].Lat, remaining[i].Lon)
			if d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}
		next := remaining[nearest]
		ordered = append(ordered, next)
		curLat, curLon = next.Lat, next.Lon
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}
	return ordered
}

// composeDay builds one day in the given city: pick places, order them,
// lay out the timeline, collect rainy alternatives and aggregate the budget.
func composeDay(day int, city string, byBudget []models.Place, ranked []CityRank, cfg Config, r *rand.Rand) models.DayPlan {
	cityPlaces := placesInCity(byBudget, city)
	if len(cityPlaces) == 0 {
		// Defensive: ranking only yields cities with eligible places, but if
		// the chosen city is empty fall back to the first other ranked city.
		for _, rc := range ranked {
			if rc.City != city {
				city = rc.City
				break
			}
		}
		cityPlaces = placesInCity(byBudget, city)
	}

	picks := ChoosePlaces(cityPlaces, r, MAX_PLACES_PER_DAY)

	cLat, cLon := CityCenter(cityPlaces)
	ordered := NearestNeighborOrder(picks, cLat, cLon)

	cityEn := city
	if len(ordered) > 0 {
		cityEn = ordered[0].CityEn
	}

	var items []models.ItineraryItem

	// Inter-city leg from the home base to the city centroid.
	distToCity := HaversineKm(config.HOME_CITY_LAT, config.HOME_CITY_LON, cLat, cLon)
	minutesToCity := MinutesFromKm(distToCity, INTER_CITY_SPEED_KMH)
	items = append(items, models.ItineraryItem{
		Kind:       models.ITEM_TRAVEL,
		LabelRu:    fmt.Sprintf("Переезд из %s в %s", config.START_CITY_RU, city),
		LabelEn:    fmt.Sprintf("Transfer from %s to %s", config.START_CITY_EN, cityEn),
		Minutes:    minutesToCity,
		DistanceKm: roundKm(distToCity),
	})

	prevLat, prevLon := cLat, cLon
	visitCostSum := 0
	travelMinutesInside := 0
	for idx := range ordered {
		p := &ordered[idx]

		dist := HaversineKm(prevLat, prevLon, p.Lat, p.Lon)
		mins := MinutesFromKm(dist, INTRA_CITY_SPEED_KMH)
		items = append(items, models.ItineraryItem{
			Kind:       models.ITEM_TRAVEL,
			LabelRu:    fmt.Sprintf("%s: переезд к %s", p.CityRu, p.NameRu),
			LabelEn:    fmt.Sprintf("%s: transfer to %s", p.CityEn, p.NameEn),
			Minutes:    mins,
			DistanceKm: roundKm(dist),
		})
		travelMinutesInside += mins
		prevLat, prevLon = p.Lat, p.Lon

		items = append(items, models.ItineraryItem{
			Kind:        models.ITEM_VISIT,
			PlaceID:     p.ID,
			NameRu:      p.NameRu,
			NameEn:      p.NameEn,
			CityRu:      p.CityRu,
			CityEn:      p.CityEn,
			Minutes:     p.AvgVisitMinutes,
			CostRub:     p.CostRub,
			Indoor:      p.Indoor,
			StairsLevel: p.StairsLevel,
		})
		visitCostSum += p.CostRub

		// Lunch lands after the first visit on multi-visit days.
		if idx == 0 && len(ordered) >= 2 {
			items = append(items, models.ItineraryItem{
				Kind:    models.ITEM_LUNCH,
				LabelRu: util.Translate(util.MSG_LUNCH, models.LANG_RU),
				LabelEn: util.Translate(util.MSG_LUNCH, models.LANG_EN),
				Minutes: LUNCH_MINUTES,
				CostRub: MealsCostRub(cfg.BudgetLevel),
			})
		}
	}

	// Return leg from the last visited place (or the centroid on empty days).
	distBack := HaversineKm(prevLat, prevLon, config.HOME_CITY_LAT, config.HOME_CITY_LON)
	minutesBack := MinutesFromKm(distBack, INTER_CITY_SPEED_KMH)
	items = append(items, models.ItineraryItem{
		Kind:       models.ITEM_TRAVEL,
		LabelRu:    "Возвращение в " + config.START_CITY_RU,
		LabelEn:    "Return to " + config.START_CITY_EN,
		Minutes:    minutesBack,
		DistanceKm: roundKm(distBack),
	})

	rainyAlts := rainyAlternatives(cityPlaces, ordered)

	// meals_rub is charged once per day even when no lunch item was emitted.
	mealsRub := MealsCostRub(cfg.BudgetLevel)
	transportRub := transportCostRub(distToCity) * 2
	dayBudget := models.DayBudget{
		AttractionsRub: visitCostSum,
		MealsRub:       mealsRub,
		TransportRub:   transportRub,
		TotalRub:       visitCostSum + mealsRub + transportRub,
	}

	return models.DayPlan{
		Day:                day,
		BaseCityRu:         city,
		BaseCityEn:         cityEn,
		Items:              items,
		RainyAlternatives:  rainyAlts,
		DayBudget:          dayBudget,
		TotalTravelMinutes: minutesToCity + travelMinutesInside + minutesBack,
	}
}

// rainyAlternatives lists indoor places of the city that were not selected,
// cheapest and shortest first, capped at MAX_RAINY_ALTERNATIVES.
func rainyAlternatives(cityPlaces, selected []models.Place) []models.RainyAlternative {
	chosenIDs := make(map[string]struct{}, len(selected))
	for _, p := range selected {
		chosenIDs[p.ID] = struct{}{}
	}

	var pool []models.Place
	for _, p := range cityPlaces {
		if _, taken := chosenIDs[p.ID]; p.Indoor && !taken {
			pool = append(pool, p)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := &pool[i], &pool[j]
		if a.CostRub != b.CostRub {
			return a.CostRub < b.CostRub
		}
		if a.AvgVisitMinutes != b.AvgVisitMinutes {
			return a.AvgVisitMinutes < b.AvgVisitMinutes
		}
		return a.NameRu < b.NameRu
	})

	if len(pool) > MAX_RAINY_ALTERNATIVES {
		pool = pool[:MAX_RAINY_ALTERNATIVES]
	}
	alts := make([]models.RainyAlternative, 0, len(pool))
	for _, p := range pool {
		alts = append(alts, models.RainyAlternative{
			PlaceID: p.ID,
			NameRu:  p.NameRu,
			NameEn:  p.NameEn,
			CityRu:  p.CityRu,
			CityEn:  p.CityEn,
			Indoor:  p.Indoor,
			CostRub: p.CostRub,
		})
	}
	return alts
}

func placesInCity(places []models.Place, city string) []models.Place {
	var inCity []models.Place
	for _, p := range places {
		if p.CityRu == city {
			inCity = append(inCity, p)
		}
	}
	return inCity
}
