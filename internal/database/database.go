package database

import (
	"fmt"
	"net/url"
	"time"
	_ "time/tzdata"

	"hospital-booking/internal/config"
	"hospital-booking/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Location resolves the configured database time zone. Appointment dates
// are calendar days in this zone.
func Location(cfg config.DatabaseConfig) (*time.Location, error) {
	name := cfg.TimeZone
	if name == "" {
		name = "UTC"
	}
	loc, err := time.LoadLocation(name)
	if err != nil || name == "Local" {
		return nil, fmt.Errorf("invalid database time zone %q, expected an IANA name", name)
	}
	return loc, nil
}

// DSN builds the connection string for the configured driver.
func DSN(cfg config.DatabaseConfig) (string, error) {
	loc, err := Location(cfg)
	if err != nil {
		return "", err
	}
	switch cfg.Driver {
	case "", "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=%s",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Database,
			url.QueryEscape(loc.String()),
		), nil
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Database,
			loc.String(),
		), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Dialector builds the gorm dialector for the configured driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "postgres" {
		return postgres.Open(dsn), nil
	}
	return mysql.Open(dsn), nil
}

// Connect initializes and returns a GORM database connection
func Connect(cfg *config.Config) *gorm.DB {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	// calendar days are computed in time.Local, so it follows the session zone
	loc, _ := Location(cfg.Database)
	time.Local = loc

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.WithFields(log.Fields{"driver": cfg.Database.Driver, "time_zone": loc.String()}).Info("Successfully connected to database")

	return db
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
