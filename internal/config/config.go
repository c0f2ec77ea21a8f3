package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBName        string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	ServerPort    string
	StaticDir     string
	JWTSecret     string
	AdminPassword string
}

// Load reads configuration from the environment. A local .env file is
// applied first when present so development setups work without exporting
// anything.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env file")
	}

	return &Config{
		DBName:        getEnv("POSTGRES_DB", "yourdb"),
		DBUser:        getEnv("POSTGRES_USER", "youruser"),
		DBPassword:    getEnv("POSTGRES_PASSWORD", "yourpass"),
		DBHost:        getEnv("POSTGRES_HOST", "postgres"),
		DBPort:        getEnv("POSTGRES_PORT", "5432"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StaticDir:     getEnv("STATIC_DIR", "./static"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

// AuthEnabled reports whether the state-update endpoint requires a host
// token. With no ADMIN_PASSWORD configured the whole surface is open.
func (c *Config) AuthEnabled() bool {
	return c.AdminPassword != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
