package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	DBName        string
	JWTSecret     string
	CloudinaryURL string
	Port          string
	GinMode       string
}

// Load reads .env when present, then the environment. MONGODB_URI,
// JWT_SECRET and CLOUDINARY_URL are required.
func Load() (Config, error) {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:      os.Getenv("MONGODB_URI"),
		DBName:        os.Getenv("MONGODB_DATABASE"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		Port:          os.Getenv("PORT"),
		GinMode:       os.Getenv("GIN_MODE"),
	}

	if cfg.MongoURI == "" || cfg.JWTSecret == "" || cfg.CloudinaryURL == "" {
		return Config{}, errors.New("MONGODB_URI, JWT_SECRET and CLOUDINARY_URL must be set")
	}
	if cfg.DBName == "" {
		cfg.DBName = "contentcal"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}
