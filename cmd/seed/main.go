package main

import (
	"os"

	"hospital-booking/internal/config"
	"hospital-booking/internal/database"
	"hospital-booking/internal/logger"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	logger.Setup(cfg.Server.LogLevel, cfg.Server.GinMode)

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@hospital.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := database.Seed(db, email, password); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Info("Seeding completed")
}
