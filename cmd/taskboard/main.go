package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/taskboardhq/taskboard/internal/taskboard/app"
)

func main() {
	// A missing .env file is fine; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
