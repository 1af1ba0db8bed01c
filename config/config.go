package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/echolytics/persona-engine/utils"
)

func init() {
	if utils.FileExists(".env") {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: failed to load .env file: %v", err)
		}
	} else {
		log.Println("Warning: .env file not found")
	}

	// Optional keys; the service degrades gracefully without them.
	optional := []string{
		"OPENAI_API_KEY",
		"SERP_API_KEY",
	}
	for _, env := range optional {
		if os.Getenv(env) == "" {
			log.Printf("Warning: %s environment variable not set\n", env)
		}
	}
}

// Config holds the runtime settings of the service.
type Config struct {
	APIPort    int
	NATSURL    string
	DataDir    string
	FetchDelay time.Duration

	EnrichNarrative   bool
	LookupWebPresence bool
}

// Load reads settings from the environment, applying defaults.
func Load() Config {
	return Config{
		APIPort:           envInt("API_PORT", 8080),
		NATSURL:           envString("NATS_URL", "nats://localhost:4222"),
		DataDir:           envString("DATA_DIR", "./data"),
		FetchDelay:        envDuration("FETCH_DELAY", 2*time.Second),
		EnrichNarrative:   os.Getenv("OPENAI_API_KEY") != "",
		LookupWebPresence: os.Getenv("SERP_API_KEY") != "",
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Warning: invalid %s value %q, using %d", key, v, fallback)
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("Warning: invalid %s value %q, using %s", key, v, fallback)
	}
	return fallback
}
