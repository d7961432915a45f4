package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envFile is loaded before the environment is read, so a local development
// setup can keep its settings next to the binary. Missing file is fine.
const envFile = ".env"

func parseEnv(cfg *Config) error {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return err
		}
	}
	return env.Parse(cfg)
}
