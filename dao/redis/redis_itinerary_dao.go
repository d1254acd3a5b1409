package redis

import (
	"encoding/json"
	"fmt"
	"log"

	"tour-planner/db"
	"tour-planner/models"
	"tour-planner/planner"
)

// ITINERARY_KEY_FORMAT_V1 caches one planning result per request shape.
// Planning is deterministic for the same catalog and inputs, so the cache
// never goes stale within a process lifetime.
const ITINERARY_KEY_FORMAT_V1 = "itinerary_v1:%d_%s_%s_%s_%d"

// RedisItineraryDAO caches computed itineraries using Redis.
type RedisItineraryDAO struct {
	client db.RedisClient
}

// NewRedisItineraryDAO initializes a RedisItineraryDAO with the Redis client.
func NewRedisItineraryDAO(client db.RedisClient) *RedisItineraryDAO {
	return &RedisItineraryDAO{client: client}
}

// SetItinerary caches the planning result for the given request shape.
func (dao *RedisItineraryDAO) SetItinerary(days int, cfg planner.Config, resp *models.ItineraryResponse) error {
	key := itineraryKey(days, cfg)
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary for key %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set itinerary in redis: %w", err)
	}
	return nil
}

// GetItinerary retrieves a cached planning result, nil on a cache miss.
func (dao *RedisItineraryDAO) GetItinerary(days int, cfg planner.Config) (*models.ItineraryResponse, error) {
	key := itineraryKey(days, cfg)
	str, err := dao.client.Get(key)
	if err != nil {
		// Treat any read failure as a miss; planning recomputes deterministically.
		return nil, nil
	}
	var resp models.ItineraryResponse
	if err := json.Unmarshal([]byte(str), &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal itinerary JSON: %w", err)
	}
	return &resp, nil
}

// DeleteItinerary drops one cached planning result.
func (dao *RedisItineraryDAO) DeleteItinerary(days int, cfg planner.Config) error {
	key := itineraryKey(days, cfg)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete itinerary key %s: %w", key, err)
	}
	log.Printf("[RedisItineraryDAO] Deleted cached itinerary for %s", key)
	return nil
}

// ListCachedItineraryKeys returns all cached itinerary cache keys.
func (dao *RedisItineraryDAO) ListCachedItineraryKeys() ([]string, error) {
	keys, err := dao.client.Keys("itinerary_v1:*")
	if err != nil {
		return nil, fmt.Errorf("failed to list itinerary keys: %w", err)
	}
	return keys, nil
}

func itineraryKey(days int, cfg planner.Config) string {
	return fmt.Sprintf(ITINERARY_KEY_FORMAT_V1, days, cfg.BudgetLevel, cfg.Mobility, cfg.Lang, cfg.Seed)
}
