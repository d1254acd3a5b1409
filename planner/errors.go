package planner

import "fmt"

// CatalogLoadError means the place catalog resource is missing or malformed.
type CatalogLoadError struct {
	Path string
	Err  error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("failed to load place catalog %q: %v", e.Path, e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

// PlanningError means no itinerary could be produced for the given inputs.
type PlanningError struct {
	Reason string
}

func (e *PlanningError) Error() string {
	return "planning failed: " + e.Reason
}
