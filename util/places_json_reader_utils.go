package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"tour-planner/models"
)

// ReadPlacesFromJSON loads the place catalog from JSON on disk.
func ReadPlacesFromJSON(filePath string) ([]models.Place, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var places []models.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("failed to unmarshal places: %w", err)
	}
	return places, nil
}

// PrintPlacesPartially prints key fields of the loaded catalog.
func PrintPlacesPartially(places []models.Place) {
	fmt.Printf("Places loaded: %d\n", len(places))
	if len(places) > 0 {
		p := places[0]
		fmt.Printf("First place: %s in %s (%.6f, %.6f)\n", p.NameRu, p.CityRu, p.Lat, p.Lon)
	}
}
