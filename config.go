package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the serving shell's configuration, read from environment
// variables.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"TASKBOARD_ADDR" envDefault:":8080"`
	// APIURL is the upstream REST API origin. The shell forwards every
	// /api/* request there so the client can use relative URLs.
	APIURL string `env:"TASKBOARD_API_URL" envDefault:"http://localhost:8000"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
