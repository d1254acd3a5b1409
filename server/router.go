package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ItineraryHandler is the route surface the router binds.
type ItineraryHandler interface {
	PlanItinerary(w http.ResponseWriter, r *http.Request)
	CatalogMap(w http.ResponseWriter, r *http.Request)
	Healthz(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	planHandler ItineraryHandler
	router      *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	planHandler ItineraryHandler,
	router *mux.Router) *Router {
	return &Router{
		planHandler: planHandler,
		router:      router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a JSON body: {days, budget_level, mobility, lang, seed}
	r.router.HandleFunc("/v1/itinerary/plan", r.planHandler.PlanItinerary).Methods("POST")

	r.router.HandleFunc("/v1/catalog/map", r.planHandler.CatalogMap).Methods("GET")

	r.router.HandleFunc("/healthz", r.planHandler.Healthz).Methods("GET")
	r.router.HandleFunc("/ping", r.planHandler.Ping).Methods("GET")
}
