package config

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

type AppConfig struct {
	Root   string
	Days   int
	Email  string
	Remote string
	Format string
}

// ParseConfig validates flag values before any repository work starts.
// The aggregation and rendering layers assume a positive day count and
// never re-check it.
func ParseConfig(c *cli.Context) (*AppConfig, error) {
	cfg := &AppConfig{
		Root:   c.String("root"),
		Days:   c.Int("days"),
		Email:  c.String("email"),
		Remote: c.String("remote"),
		Format: c.String("format"),
	}

	if cfg.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", cfg.Days)
	}
	switch cfg.Format {
	case "text", "json", "csv":
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or csv)", cfg.Format)
	}

	return cfg, nil
}
