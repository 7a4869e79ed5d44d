package app

import (
	"fmt"

	"github.com/vk/getarg/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string
	LogLevel  string

	ReportFormat string   // text, json or yaml
	PrintArgs    bool     // write the resolved flag report on Run
	Evals        []string // expressions evaluated in order on Run

	HealthcheckPort int // 0 disables the HTTP server
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.ReportFormat {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
	default:
		return nil, fmt.Errorf("invalid report format %q: must be 'text', 'json' or 'yaml'", cfg.ReportFormat)
	}

	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d: must be between 0 and 65535", cfg.HealthcheckPort)
	}

	for i, expr := range cfg.Evals {
		if expr == "" {
			return nil, fmt.Errorf("eval expression #%d is empty", i+1)
		}
	}

	return &cfg, nil
}
