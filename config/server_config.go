package config

import (
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Port             string
	Mode             string
	JwtSecret        string
	JwtTTL           time.Duration
	SimulatedLatency time.Duration
}

func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:             getEnv("PORT", "8080"),
		Mode:             getEnv("APP_MODE", "dev"),
		JwtSecret:        getEnv("JWT_SECRET", "your_secret_key"),
		JwtTTL:           time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		SimulatedLatency: time.Duration(getEnvInt("SIMULATED_LATENCY_MS", 300)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
