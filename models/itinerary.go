package models

// Itinerary item kinds
const (
	ITEM_TRAVEL = "travel"
	ITEM_VISIT  = "visit"
	ITEM_LUNCH  = "lunch"
)

// ItineraryItem is one timeline entry of a day: a transfer, a visit or lunch.
// Fields that only apply to one kind are omitted from JSON for the others.
type ItineraryItem struct {
	Kind    string `json:"kind"`
	LabelRu string `json:"label_ru,omitempty"`
	LabelEn string `json:"label_en,omitempty"`

	// Visit fields
	PlaceID     string `json:"place_id,omitempty"`
	NameRu      string `json:"name_ru,omitempty"`
	NameEn      string `json:"name_en,omitempty"`
	CityRu      string `json:"city_ru,omitempty"`
	CityEn      string `json:"city_en,omitempty"`
	Indoor      bool   `json:"indoor,omitempty"`
	StairsLevel int    `json:"stairs_level,omitempty"`

	Minutes    int     `json:"minutes"`
	DistanceKm float64 `json:"distance_km,omitempty"`
	CostRub    int     `json:"cost_rub,omitempty"`
}

// DayBudget breaks a day's spend into categories, in whole rubles.
type DayBudget struct {
	AttractionsRub int `json:"attractions_rub"`
	MealsRub       int `json:"meals_rub"`
	TransportRub   int `json:"transport_rub"`
	TotalRub       int `json:"total_rub"`
}

// RainyAlternative is an indoor fallback place not selected for the day.
type RainyAlternative struct {
	PlaceID string `json:"place_id"`
	NameRu  string `json:"name_ru"`
	NameEn  string `json:"name_en"`
	CityRu  string `json:"city_ru"`
	CityEn  string `json:"city_en"`
	Indoor  bool   `json:"indoor"`
	CostRub int    `json:"cost_rub"`
}

// DayPlan is one composed day in a chosen base city.
type DayPlan struct {
	Day                int                `json:"day"`
	BaseCityRu         string             `json:"base_city_ru"`
	BaseCityEn         string             `json:"base_city_en"`
	Items              []ItineraryItem    `json:"items"`
	RainyAlternatives  []RainyAlternative `json:"rainy_alternatives"`
	DayBudget          DayBudget          `json:"day_budget"`
	TotalTravelMinutes int                `json:"total_travel_minutes"`
}

// ItineraryResponse is the full planning result.
type ItineraryResponse struct {
	Ok             bool      `json:"ok"`
	Lang           string    `json:"lang"`
	Seed           int64     `json:"seed"`
	Currency       string    `json:"currency"`
	StartCityRu    string    `json:"start_city_ru"`
	StartCityEn    string    `json:"start_city_en"`
	Days           []DayPlan `json:"days"`
	TotalBudgetRub int       `json:"total_budget_rub"`
}

// ErrorResponse carries a localized error message to the caller.
type ErrorResponse struct {
	Ok      bool              `json:"ok"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
