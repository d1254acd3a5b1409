package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	redisdao "tour-planner/dao/redis"
	"tour-planner/db"
	"tour-planner/models"
	"tour-planner/planner"
	services "tour-planner/service"
)

func testCatalog() []models.Place {
	return []models.Place{
		{
			ID: "x-art-museum", NameRu: "Музей искусств", NameEn: "Art Museum",
			CityRu: "Выборг", CityEn: "Vyborg", Lat: 60.7131, Lon: 28.7442,
			Categories: []string{"museum"}, Indoor: true, StairsLevel: 1,
			AvgVisitMinutes: 90, CostRub: 300,
		},
		{
			ID: "x-library", NameRu: "Библиотека Аалто", NameEn: "Aalto Library",
			CityRu: "Выборг", CityEn: "Vyborg", Lat: 60.7126, Lon: 28.7343,
			Categories: []string{"architecture"}, Indoor: true, StairsLevel: 0,
			AvgVisitMinutes: 60, CostRub: 0,
		},
		{
			ID: "x-park", NameRu: "Парк Монрепо", NameEn: "Monrepos Park",
			CityRu: "Выборг", CityEn: "Vyborg", Lat: 60.7333, Lon: 28.7247,
			Categories: []string{"park"}, Indoor: false, StairsLevel: 1,
			AvgVisitMinutes: 120, CostRub: 300,
		},
		{
			ID: "y-palace", NameRu: "Гатчинский дворец", NameEn: "Gatchina Palace",
			CityRu: "Гатчина", CityEn: "Gatchina", Lat: 59.5634, Lon: 30.1072,
			Categories: []string{"palace"}, Indoor: true, StairsLevel: 1,
			AvgVisitMinutes: 120, CostRub: 450,
		},
	}
}

func newTestHandler() *PlanHandler {
	places := testCatalog()
	mockClient := db.NewMockRedisClient(context.Background())
	dao := redisdao.NewRedisItineraryDAO(mockClient)
	svc := services.NewItineraryService(planner.NewPlanner(places), dao)
	return NewPlanHandler(svc, places)
}

func postPlan(t *testing.T, handler *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/itinerary/plan", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.PlanItinerary(rr, req)
	return rr
}

func TestPlanHandler_PlanItineraryOk(t *testing.T) {
	// Setup
	handler := newTestHandler()

	// Act
	rr := postPlan(t, handler, `{"days": 2, "budget_level": "economy", "mobility": "strict", "lang": "ru", "seed": 42}`)

	// Assert
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp models.ItineraryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Expected a valid JSON body, got %v", err)
	}
	if !resp.Ok {
		t.Error("Expected ok=true")
	}
	if len(resp.Days) != 2 {
		t.Errorf("Expected 2 days, got %d", len(resp.Days))
	}
	if resp.Seed != 42 {
		t.Errorf("Expected seed 42 echoed, got %d", resp.Seed)
	}
	if resp.Currency != "RUB" {
		t.Errorf("Expected currency RUB, got %s", resp.Currency)
	}
}

func TestPlanHandler_PlanItineraryAppliesDefaults(t *testing.T) {
	// Setup
	handler := newTestHandler()

	// Act: only the required fields, everything else defaulted.
	rr := postPlan(t, handler, `{"days": 1, "budget_level": "standard"}`)

	// Assert
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp models.ItineraryResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Lang != models.LANG_RU {
		t.Errorf("Expected default lang ru, got %s", resp.Lang)
	}
	if resp.Seed != 42 {
		t.Errorf("Expected default seed 42, got %d", resp.Seed)
	}
}

func TestPlanHandler_PlanItineraryValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{
			name:    "days out of range",
			body:    `{"days": 5, "budget_level": "economy", "lang": "ru"}`,
			field:   "days",
			message: "Параметр days должен быть 1, 2 или 3.",
		},
		{
			name:    "bad budget level in english",
			body:    `{"days": 1, "budget_level": "luxury", "lang": "en"}`,
			field:   "budget_level",
			message: "Parameter budget_level must be economy, standard, or comfort.",
		},
		{
			name:    "bad mobility",
			body:    `{"days": 1, "budget_level": "economy", "mobility": "none", "lang": "ru"}`,
			field:   "mobility",
			message: "Параметр mobility должен быть strict или normal.",
		},
		{
			name:    "bad lang falls back to russian",
			body:    `{"days": 1, "budget_level": "economy", "lang": "fr"}`,
			field:   "lang",
			message: "Параметр lang должен быть ru или en.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := newTestHandler()

			rr := postPlan(t, handler, test.body)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rr.Code)
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Expected a valid JSON body, got %v", err)
			}
			if resp.Ok {
				t.Error("Expected ok=false")
			}
			if resp.Error != test.message {
				t.Errorf("Expected error %q, got %q", test.message, resp.Error)
			}
			if _, ok := resp.Details[test.field]; !ok {
				t.Errorf("Expected details for field %q, got %v", test.field, resp.Details)
			}
		})
	}
}

func TestPlanHandler_PlanItineraryMalformedBody(t *testing.T) {
	// Setup
	handler := newTestHandler()

	// Act
	rr := postPlan(t, handler, `{"days": `)

	// Assert
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}
	var resp models.ErrorResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Error != "Произошла ошибка при генерации маршрута." {
		t.Errorf("Expected the general error message, got %q", resp.Error)
	}
}

func TestPlanHandler_PlanItinerarySecondCallHitsCache(t *testing.T) {
	// Setup
	handler := newTestHandler()
	body := `{"days": 1, "budget_level": "economy", "mobility": "strict", "lang": "ru", "seed": 7}`

	// Act
	first := postPlan(t, handler, body)
	second := postPlan(t, handler, body)

	// Assert: identical requests produce identical plans, cached or not.
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("Expected status 200 twice, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("Expected the cached response to match the first response")
	}
}

func TestPlanHandler_CatalogMapRendersHTML(t *testing.T) {
	// Setup
	handler := newTestHandler()
	req := httptest.NewRequest("GET", "/v1/catalog/map", nil)
	rr := httptest.NewRecorder()

	// Act
	handler.CatalogMap(rr, req)

	// Assert
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected an HTML content type, got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "<html") {
		t.Error("Expected an HTML document in the body")
	}
}

func TestPlanHandler_Healthz(t *testing.T) {
	// Setup
	handler := newTestHandler()
	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()

	// Act
	handler.Healthz(rr, req)

	// Assert
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestPlanHandler_Ping(t *testing.T) {
	// Setup
	handler := newTestHandler()
	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()

	// Act
	handler.Ping(rr, req)

	// Assert
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if body["status"] != "pong" {
		t.Errorf("Expected status pong, got %v", body)
	}
}
