package cmd

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	AuditSchedule  string
	PersistRetries uint64
}

var loadDotEnv sync.Once

// LoadConfig reads .env once, then the process environment. A missing .env
// is fine; variables may come from the environment alone.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		_ = godotenv.Load(".env")
	})

	retries := uint64(2)
	if raw := os.Getenv("PERSIST_RETRIES"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Config{}, fmt.Errorf("PERSIST_RETRIES: %w", err)
		}
		retries = n
	}

	config := Config{
		HTTPPort:       getenv("HTTP_PORT", "8080"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      getenv("DB_SSLMODE", "disable"),
		AuditSchedule:  os.Getenv("ORDER_AUDIT_SCHEDULE"),
		PersistRetries: retries,
	}
	return config, nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
