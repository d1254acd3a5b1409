package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"tour-planner/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	container.TourPlannerHttpServer.Start()
}
