package models

import "fmt"

// Budget levels
const (
	BUDGET_ECONOMY  = "economy"
	BUDGET_STANDARD = "standard"
	BUDGET_COMFORT  = "comfort"
)

// Mobility preferences
const (
	MOBILITY_STRICT = "strict"
	MOBILITY_NORMAL = "normal"
)

// Supported languages
const (
	LANG_RU = "ru"
	LANG_EN = "en"
)

const (
	MIN_DAYS = 1
	MAX_DAYS = 3
)

// PlanRequest is the inbound payload for itinerary planning.
type PlanRequest struct {
	Days        int    `json:"days"`
	BudgetLevel string `json:"budget_level"`
	Mobility    string `json:"mobility"`
	Lang        string `json:"lang"`
	Seed        *int64 `json:"seed,omitempty"`
}

// ValidationError names the first request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Message)
}

// ApplyDefaults fills optional fields the same way the request schema does.
func (r *PlanRequest) ApplyDefaults(defaultLang string, defaultSeed int64) {
	if r.Mobility == "" {
		r.Mobility = MOBILITY_STRICT
	}
	if r.Lang == "" {
		r.Lang = defaultLang
	}
	if r.Seed == nil {
		seed := defaultSeed
		r.Seed = &seed
	}
}

// Validate checks fields in declaration order and reports the first failure.
func (r *PlanRequest) Validate() *ValidationError {
	if r.Days < MIN_DAYS || r.Days > MAX_DAYS {
		return &ValidationError{Field: "days", Message: "must be between 1 and 3"}
	}
	switch r.BudgetLevel {
	case BUDGET_ECONOMY, BUDGET_STANDARD, BUDGET_COMFORT:
	default:
		return &ValidationError{Field: "budget_level", Message: "must be economy, standard or comfort"}
	}
	switch r.Mobility {
	case MOBILITY_STRICT, MOBILITY_NORMAL:
	default:
		return &ValidationError{Field: "mobility", Message: "must be strict or normal"}
	}
	switch r.Lang {
	case LANG_RU, LANG_EN:
	default:
		return &ValidationError{Field: "lang", Message: "must be ru or en"}
	}
	return nil
}
