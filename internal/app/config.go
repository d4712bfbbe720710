package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DataPath   string // hcl site data: food and recipe definitions
	OutputPath string // directory for JSON artifacts; empty writes a summary to stdout

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DataPath == "" {
		return nil, errors.New("DataPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 0 {
		return nil, errors.New("WorkerCount cannot be negative")
	}

	return &cfg, nil
}
