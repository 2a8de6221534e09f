package main

import (
	"context"
	"log"

	"github.com/yukikurage/trackhire-api/internal/config"
	"github.com/yukikurage/trackhire-api/internal/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.Seed(context.Background(), db, cfg.BcryptCost); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Printf("Demo user: %s / %s", database.DemoUserEmail, database.DemoPassword)
	log.Printf("Demo admin: %s / %s", database.DemoAdminEmail, database.DemoPassword)
}
