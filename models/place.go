package models

import "fmt"

// Stairs levels for Place.StairsLevel.
const (
	STAIRS_LOW      = 0
	STAIRS_MODERATE = 1
	STAIRS_HIGH     = 2
)

// Category marking non-visitable metadata rows in the catalog.
const NOTE_CATEGORY = "note"

// Place is an immutable catalog entry with bilingual names.
type Place struct {
	ID          string   `json:"id"`
	NameRu      string   `json:"name_ru"`
	NameEn      string   `json:"name_en"`
	CityRu      string   `json:"city_ru"`
	CityEn      string   `json:"city_en"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Categories  []string `json:"categories"`
	Indoor      bool     `json:"indoor"`
	StairsLevel int      `json:"stairs_level"`

	AvgVisitMinutes int `json:"avg_visit_minutes"`
	CostRub         int `json:"cost_rub"`

	NotesRu string `json:"notes_ru,omitempty"`
	NotesEn string `json:"notes_en,omitempty"`
}

// HasCategory reports whether the place carries the given category tag.
func (p *Place) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// IsPlaceholder reports whether the entry is a metadata row, not a destination.
func (p *Place) IsPlaceholder() bool {
	return p.AvgVisitMinutes <= 0 || p.HasCategory(NOTE_CATEGORY)
}

func (p *Place) ToString() string {
	return fmt.Sprintf("Place(id=%s, name=%s, city=%s, lat=%f, lon=%f)",
		p.ID, p.NameRu, p.CityRu, p.Lat, p.Lon)
}
