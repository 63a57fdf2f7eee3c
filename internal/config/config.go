package config

import (
	"os"
	"time"
)

type Config struct {
	DatabaseURL       string
	JWTSecret         string
	Port              string
	ExerciseDBBaseURL string
	ExerciseDBAPIKey  string
	ExerciseDBTimeout time.Duration
}

func Load() *Config {
	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", "coachpeter.db"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:              getEnv("PORT", "5000"),
		ExerciseDBBaseURL: getEnv("EXERCISEDB_BASE_URL", "https://exercisedb.p.rapidapi.com"),
		ExerciseDBAPIKey:  getEnv("EXERCISEDB_API_KEY", ""),
		ExerciseDBTimeout: getDurationEnv("EXERCISEDB_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
