package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port string

	DBDriver   string // mysql | postgres | sqlite
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	UploadDir     string
	PublicBaseURL string // base for stored image URLs, e.g. http://localhost:3001
}

// Load reads the .env file (if any) and the process environment.
// Missing values fall back to defaults; nothing is validated here.
func Load() Config {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg := Config{
		Port:       getenv("APP_PORT", "3001"),
		DBDriver:   getenv("DB_DRIVER", "mysql"),
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "catalog"),
		DBPort:     getenv("DB_PORT", "3306"),
		UploadDir:  getenv("UPLOAD_DIR", "uploads"),
	}
	cfg.PublicBaseURL = getenv("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
