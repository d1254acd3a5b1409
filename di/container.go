package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"tour-planner/config"
	redisdao "tour-planner/dao/redis"
	"tour-planner/db"
	"tour-planner/models"
	"tour-planner/planner"
	"tour-planner/server"
	"tour-planner/server/handlers"
	services "tour-planner/service"
	"tour-planner/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient           db.RedisClient
	ItineraryDao          *redisdao.RedisItineraryDAO
	Places                []models.Place
	Planner               *planner.Planner
	ItineraryService      *services.ItineraryService
	PlanHandler           *handlers.PlanHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	TourPlannerHttpServer *server.TourPlannerHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Outside prod the itinerary cache runs on the in-memory mock client.
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewKVRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Load the static place catalog once; it is shared read-only afterwards.
	places, err := planner.LoadCatalog(config.GetResourcePath(config.PLACES_CATALOG_RESOURCE))
	if err != nil {
		panic(fmt.Sprintf("Failed to load place catalog: %v", err))
	}
	util.PrintPlacesPartially(places)

	itineraryDao := redisdao.NewRedisItineraryDAO(redisClient)

	tourPlanner := planner.NewPlanner(places)

	itineraryService := services.NewItineraryService(tourPlanner, itineraryDao)

	planHandler := handlers.NewPlanHandler(itineraryService, places)

	muxRouter := mux.NewRouter()

	router := server.NewRouter(planHandler, muxRouter)

	tourPlannerHttpServer := server.NewTourPlannerHttpServer(router, muxRouter)

	return &Container{
		RedisClient:           redisClient,
		ItineraryDao:          itineraryDao,
		Places:                places,
		Planner:               tourPlanner,
		ItineraryService:      itineraryService,
		PlanHandler:           planHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		TourPlannerHttpServer: tourPlannerHttpServer,
	}
}
