package settings

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Tunables for one smile construction run. AtmWindow is in absolute
// price units around the mean underlying price, not a percentage.
type Config struct {
	AtmWindow    float64 `json:"atm_window"`
	Lenient      bool    `json:"lenient"`
	ExpiryPolicy string  `json:"expiry_policy"`
	TargetExpiry int     `json:"target_expiry"`
	GridStart    float64 `json:"grid_start"`
	GridEnd      float64 `json:"grid_end"`
	GridStep     float64 `json:"grid_step"`
	LogLevel     string  `json:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		AtmWindow:    10,
		Lenient:      false,
		ExpiryPolicy: "earliest",
		GridStart:    0.01,
		GridEnd:      0.99,
		GridStep:     0.01,
		LogLevel:     "info",
	}
}

// Load a config file from a local json file, then apply any
// environment overrides. Missing file falls back to defaults.
func LoadConfig(file string) Config {
	config := DefaultConfig()
	configFile, err := os.Open(file)
	if err != nil {
		log.Println(err.Error())
	} else {
		defer configFile.Close()
		jsonParser := json.NewDecoder(configFile)
		jsonParser.Decode(&config)
	}
	applyEnv(&config)
	return config
}

func applyEnv(config *Config) {
	godotenv.Load()
	config.AtmWindow = getEnvFloat("SMILE_ATM_WINDOW", config.AtmWindow)
	config.ExpiryPolicy = getEnv("SMILE_EXPIRY_POLICY", config.ExpiryPolicy)
	config.LogLevel = getEnv("SMILE_LOG_LEVEL", config.LogLevel)
	if v, ok := os.LookupEnv("SMILE_LENIENT"); ok {
		config.Lenient = v == "true" || v == "1"
	}
}

func getEnv(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
