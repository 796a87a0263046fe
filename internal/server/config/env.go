package config

import (
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, if present, so development setups
// work without exporting anything. Variables that are not set leave the
// current (default) values untouched.
func parseEnv(config *Config) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		_ = godotenv.Load()
	}

	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
