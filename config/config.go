package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tarak510605/restaurant-ordering-system/models"
)

// Config holds everything read from the environment. Load reads an
// optional .env file first, so local runs need no exported variables.
type Config struct {
	Port      string
	GinMode   string
	DBPath    string
	JWTSecret []byte
	Seed      bool
}

func Load() Config {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	return Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   os.Getenv("GIN_MODE"),
		DBPath:    getEnv("DB_PATH", "restaurant_ordering.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "restaurant_ordering_secret_2024")),
		Seed:      os.Getenv("SEED") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database and migrates the schema. The returned
// handle is injected into the repositories by the entry point; nothing
// else holds it.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Country{},
		&models.Role{},
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
	); err != nil {
		return nil, err
	}

	log.Println("✅ Database connected and migrated successfully")
	return db, nil
}
