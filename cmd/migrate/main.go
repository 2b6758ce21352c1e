package main

import (
	"hospital-booking/internal/config"
	"hospital-booking/internal/database"
	"hospital-booking/internal/logger"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	logger.Setup(cfg.Server.LogLevel, cfg.Server.GinMode)

	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Info("Migration completed")
}
