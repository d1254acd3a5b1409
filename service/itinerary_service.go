package services

import (
	"log"

	redisdao "tour-planner/dao/redis"
	"tour-planner/models"
	"tour-planner/planner"
)

// ItineraryService plans itineraries with a cache-aside Redis layer in front
// of the deterministic planner.
type ItineraryService struct {
	planner      *planner.Planner
	itineraryDao *redisdao.RedisItineraryDAO
}

// NewItineraryService constructs the service with its dependencies.
func NewItineraryService(
	pl *planner.Planner,
	itineraryDao *redisdao.RedisItineraryDAO) *ItineraryService {

	return &ItineraryService{
		planner:      pl,
		itineraryDao: itineraryDao,
	}
}

// PlanItinerary returns a cached result when available, otherwise plans and
// caches. Cache write failures are logged, never surfaced.
func (s *ItineraryService) PlanItinerary(days int, cfg planner.Config) (*models.ItineraryResponse, error) {
	if cached, err := s.itineraryDao.GetItinerary(days, cfg); err == nil && cached != nil {
		return cached, nil
	}

	resp, err := s.planner.Plan(days, cfg)
	if err != nil {
		return nil, err
	}

	if err := s.itineraryDao.SetItinerary(days, cfg, resp); err != nil {
		log.Printf("[ItineraryService] Failed to cache itinerary: %v", err)
	}
	return resp, nil
}
