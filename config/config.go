package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Home base: every itinerary starts and ends at Saint Petersburg center.
const HOME_CITY_LAT = 59.9391
const HOME_CITY_LON = 30.3158
const START_CITY_RU = "Санкт-Петербург"
const START_CITY_EN = "Saint Petersburg"

// Planner defaults
const CURRENCY = "RUB"
const DEFAULT_SEED = 42
const DEFAULT_LANG = "ru"
const DEFAULT_MOBILITY = "strict"

// Server config
const SERVER_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACES_CATALOG_RESOURCE = "places.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// RedisAddress returns the Redis address, preferring the REDIS_ADDR env var.
func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return REDIS_DB_ADDRESS
}
