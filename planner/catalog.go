package planner

import (
	"tour-planner/models"
	"tour-planner/util"
)

// Attraction cost ceilings per budget level. Comfort is effectively unlimited
// for this catalog.
const (
	MAX_COST_ECONOMY  = 600
	MAX_COST_STANDARD = 1200
	MAX_COST_COMFORT  = 10000
)

// LoadCatalog reads the static place catalog from disk.
func LoadCatalog(path string) ([]models.Place, error) {
	places, err := util.ReadPlacesFromJSON(path)
	if err != nil {
		return nil, &CatalogLoadError{Path: path, Err: err}
	}
	return places, nil
}

// ExcludePlaceholders drops metadata rows that are not visitable destinations.
func ExcludePlaceholders(places []models.Place) []models.Place {
	usable := make([]models.Place, 0, len(places))
	for _, p := range places {
		if p.IsPlaceholder() {
			continue
		}
		usable = append(usable, p)
	}
	return usable
}

// FilterAccessible keeps places within the stairs threshold for the mobility
// preference: strict tolerates up to moderate stairs, normal up to high.
func FilterAccessible(places []models.Place, mobility string) []models.Place {
	maxStairs := models.STAIRS_HIGH
	if mobility == models.MOBILITY_STRICT {
		maxStairs = models.STAIRS_MODERATE
	}
	accessible := make([]models.Place, 0, len(places))
	for _, p := range places {
		if p.StairsLevel <= maxStairs {
			accessible = append(accessible, p)
		}
	}
	return accessible
}

// FilterBudget keeps places whose attraction cost fits the budget level.
func FilterBudget(places []models.Place, budgetLevel string) []models.Place {
	maxCost := maxCostForBudget(budgetLevel)
	affordable := make([]models.Place, 0, len(places))
	for _, p := range places {
		if p.CostRub <= maxCost {
			affordable = append(affordable, p)
		}
	}
	return affordable
}

func maxCostForBudget(budgetLevel string) int {
	switch budgetLevel {
	case models.BUDGET_ECONOMY:
		return MAX_COST_ECONOMY
	case models.BUDGET_STANDARD:
		return MAX_COST_STANDARD
	default:
		return MAX_COST_COMFORT
	}
}
