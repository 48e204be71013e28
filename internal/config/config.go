package config

import (
	"ctchen222/Noughts-And-Crosses/internal/validator"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string    `yaml:"log-level" env:"NOUGHTS_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFile     string    `yaml:"log-file" env:"NOUGHTS_LOG_FILE" env-default:"noughts.log" validate:"required"`
	Difficulty  string    `yaml:"difficulty" env:"NOUGHTS_DIFFICULTY" env-default:"hard" validate:"oneof=easy hard"`
	Persona     string    `yaml:"persona" env:"NOUGHTS_PERSONA" env-default:"hal" validate:"oneof=hal marvin"`
	Seed        uint64    `yaml:"seed" env:"NOUGHTS_SEED" env-default:"0"`
	PacingScale float64   `yaml:"pacing-scale" env:"NOUGHTS_PACING_SCALE" env-default:"1" validate:"gte=0,lte=10"`
	Telemetry   Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Enabled    bool   `yaml:"enabled" env:"NOUGHTS_TELEMETRY_ENABLED" env-default:"false"`
	TraceFile  string `yaml:"trace-file" env:"NOUGHTS_TRACE_FILE" env-default:"traces.json" validate:"required_if=Enabled true"`
	MetricFile string `yaml:"metric-file" env:"NOUGHTS_METRIC_FILE" env-default:"metrics.json" validate:"required_if=Enabled true"`
	LogFile    string `yaml:"log-file" env:"NOUGHTS_OTEL_LOG_FILE" env-default:"otel-logs.json" validate:"required_if=Enabled true"`
}

// Load reads the YAML file at path, applies environment overrides and validates
// the result. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := validator.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}
