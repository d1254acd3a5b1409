package planner

import (
	"math/rand"

	"tour-planner/config"
	"tour-planner/models"
)

// Config holds the validated planning parameters for one request.
type Config struct {
	BudgetLevel string
	Mobility    string
	Seed        int64
	Lang        string
}

// Planner composes multi-day itineraries over an immutable place catalog.
// Safe for concurrent use: nothing is mutated after construction.
type Planner struct {
	places []models.Place
}

// NewPlanner creates a planner over the loaded catalog.
func NewPlanner(places []models.Place) *Planner {
	return &Planner{places: places}
}

// Plan builds an itinerary of up to the requested number of days, one ranked
// city per day. The day count is silently capped at the number of cities that
// still have eligible places after filtering.
func (pl *Planner) Plan(days int, cfg Config) (*models.ItineraryResponse, error) {
	usable := ExcludePlaceholders(pl.places)
	accessible := FilterAccessible(usable, cfg.Mobility)
	byBudget := FilterBudget(accessible, cfg.BudgetLevel)

	if len(byBudget) == 0 {
		return nil, &PlanningError{Reason: "no eligible places after filtering"}
	}

	ranked := RankCities(byBudget)

	wantCities := days
	if wantCities < 1 {
		wantCities = 1
	}
	if wantCities > len(ranked) {
		wantCities = len(ranked)
	}
	chosen := ranked[:wantCities]

	// Deterministic source for tie-breaks, seeded per request.
	r := rand.New(rand.NewSource(cfg.Seed))

	dayCount := days
	if dayCount > len(chosen) {
		dayCount = len(chosen)
	}

	dayPlans := make([]models.DayPlan, 0, dayCount)
	totalBudget := 0
	for d := 0; d < dayCount; d++ {
		dayPlan := composeDay(d+1, chosen[d].City, byBudget, ranked, cfg, r)
		totalBudget += dayPlan.DayBudget.TotalRub
		dayPlans = append(dayPlans, dayPlan)
	}

	return &models.ItineraryResponse{
		Ok:             true,
		Lang:           cfg.Lang,
		Seed:           cfg.Seed,
		Currency:       config.CURRENCY,
		StartCityRu:    config.START_CITY_RU,
		StartCityEn:    config.START_CITY_EN,
		Days:           dayPlans,
		TotalBudgetRub: totalBudget,
	}, nil
}
