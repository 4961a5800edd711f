package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"bankmanager/internal/http"
	"bankmanager/internal/storage"
)

type Config struct {
	LogLevel int `envconfig:"LOG_LEVEL" default:"-4"`
	Storage  storage.Config
	HTTP     http.Config
}

// Load reads an optional .env file, then the environment. Variables already
// set in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	return config, nil
}
