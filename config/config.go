package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds every runtime setting the server needs. It is loaded once in
// main and passed into constructors; nothing mutates it after startup.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret      string
	JWTExpiryHours int
}

// Load reads the configuration from environment variables. JWT_SECRET is the
// only mandatory key; everything else has a workable default for local use.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set in the environment")
	}

	expiry := 168 // 7 days
	if v := os.Getenv("JWT_EXPIRY_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.New("JWT_EXPIRY_HOURS must be a positive integer")
		}
		expiry = n
	}

	return &Config{
		Port:           getenv("PORT", "5000"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getenv("DB_NAME", "zenox"),
		DBPort:         getenv("DB_PORT", "5432"),
		JWTSecret:      secret,
		JWTExpiryHours: expiry,
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
