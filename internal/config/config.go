package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/quizrush/quizrush-backend/internal"
)

type Config struct {
	Port string

	// Contract constants. Defaults must stay wire-compatible with
	// existing clients; override only for testing.
	MaxPlayersPerRoom int
	WinThreshold      int
	RoundClearDelay   time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Port:              getEnv("PORT", "3000"),
		MaxPlayersPerRoom: getIntEnv("ROOM_CAPACITY", internal.MaxPlayersPerRoom),
		WinThreshold:      getIntEnv("WIN_THRESHOLD", internal.WinThreshold),
		RoundClearDelay:   getDurationEnv("ROUND_CLEAR_DELAY", internal.RoundClearDelay),
	}
}

// getEnv reads an environment variable and returns its value or a default value
func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[LoadConfig] Invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("[LoadConfig] Invalid %s=%q, using default %s", key, raw, defaultValue)
		return defaultValue
	}
	return value
}
