package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"tour-planner/config"
	"tour-planner/models"
	"tour-planner/planner"
	services "tour-planner/service"
	"tour-planner/util"
)

// PlanHandler serves itinerary planning and catalog endpoints.
type PlanHandler struct {
	itineraryService *services.ItineraryService
	places           []models.Place
}

func NewPlanHandler(itineraryService *services.ItineraryService, places []models.Place) *PlanHandler {
	return &PlanHandler{
		itineraryService: itineraryService,
		places:           places,
	}
}

// PlanItinerary handles POST /v1/itinerary/plan
func (h *PlanHandler) PlanItinerary(w http.ResponseWriter, r *http.Request) {
	// Errors localize to the requested language when it is usable.
	lang := config.DEFAULT_LANG

	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, util.Translate(util.MSG_ERROR_GENERAL, lang), nil)
		return
	}
	if req.Lang == models.LANG_RU || req.Lang == models.LANG_EN {
		lang = req.Lang
	}

	req.ApplyDefaults(config.DEFAULT_LANG, config.DEFAULT_SEED)
	if verr := req.Validate(); verr != nil {
		writeError(w, http.StatusBadRequest,
			util.Translate(messageKeyForField(verr.Field), lang),
			map[string]string{verr.Field: verr.Message})
		return
	}

	cfg := planner.Config{
		BudgetLevel: req.BudgetLevel,
		Mobility:    req.Mobility,
		Seed:        *req.Seed,
		Lang:        req.Lang,
	}
	resp, err := h.itineraryService.PlanItinerary(req.Days, cfg)
	if err != nil {
		log.Println("Error planning itinerary:", err)
		writeError(w, http.StatusInternalServerError, util.Translate(util.MSG_ERROR_GENERAL, lang), nil)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// CatalogMap handles GET /v1/catalog/map
func (h *PlanHandler) CatalogMap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderCatalogMap(w, h.places); err != nil {
		log.Println("Error rendering catalog map:", err)
	}
}

// Healthz handles GET /healthz
func (h *PlanHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ping handles GET /ping
func (h *PlanHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func messageKeyForField(field string) string {
	switch field {
	case "days":
		return util.MSG_ERROR_INVALID_DAYS
	case "budget_level":
		return util.MSG_ERROR_INVALID_BUDGET
	case "mobility":
		return util.MSG_ERROR_INVALID_MOBILITY
	case "lang":
		return util.MSG_ERROR_INVALID_LANG
	default:
		return util.MSG_ERROR_GENERAL
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, details map[string]string) {
	writeJSON(w, status, models.ErrorResponse{
		Ok:      false,
		Error:   message,
		Details: details,
	})
}
