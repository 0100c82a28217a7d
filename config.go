package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env vars honored by ticketb. Values from a .env file never override
// the process environment.
const (
	envSource       = "TICKETB_SOURCE"
	envReduceMotion = "TICKETB_REDUCE_MOTION"
)

// Config holds startup configuration resolved from args and environment.
type Config struct {
	Source       string
	ReduceMotion bool
}

// LoadConfig resolves configuration: a source given on the command line
// wins over TICKETB_SOURCE. A missing .env file is not an error.
func LoadConfig(args []string) Config {
	_ = godotenv.Load()

	cfg := Config{
		Source:       strings.TrimSpace(os.Getenv(envSource)),
		ReduceMotion: parseBoolishEnv(os.Getenv(envReduceMotion)),
	}
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		cfg.Source = strings.TrimSpace(args[0])
	}
	return cfg
}

func parseBoolishEnv(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
