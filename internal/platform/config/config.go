package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"dog-registry/internal/platform/logger"
)

// Config se lee de env al arrancar; los flags del CLI pueden pisarlo.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"   envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"  envDefault:"text"`
	AppName   string `env:"APP_NAME"    envDefault:"dogs"`
	Strict    bool   `env:"DOGS_STRICT" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoggerOptions traduce la config a opciones del logger.
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	}
}
