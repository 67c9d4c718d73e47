// Package config loads server configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	Addr     string
	DBPath   string
	LogPath  string
	SeedFile string

	Flutterwave FlutterwaveConfig

	AdminUser     string
	AdminPassword string
}

// FlutterwaveConfig configures the payment verification client.
type FlutterwaveConfig struct {
	BaseURL   string
	SecretKey string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables take precedence over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:     getEnv("HOMEFIND_ADDR", ":8080"),
		DBPath:   getEnv("HOMEFIND_DB", "homefind.db"),
		LogPath:  os.Getenv("HOMEFIND_LOG"),
		SeedFile: os.Getenv("HOMEFIND_SEED"),
		Flutterwave: FlutterwaveConfig{
			BaseURL:   getEnv("FLUTTERWAVE_URL", "https://api.flutterwave.com"),
			SecretKey: os.Getenv("FLUTTERWAVE_SECRET_KEY"),
		},
		AdminUser:     getEnv("HOMEFIND_ADMIN_USER", "admin"),
		AdminPassword: os.Getenv("HOMEFIND_ADMIN_PASSWORD"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
