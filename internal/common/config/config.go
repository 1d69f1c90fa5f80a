package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type App struct {
	Port            int           `env:"PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads .env if present, then the process environment.
func Load() (App, error) {
	_ = godotenv.Load()
	var a App
	if err := env.Parse(&a); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}
	return a, nil
}
