package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats understood by the report package.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds the application configuration.
type Config struct {
	Format            string
	Factions          []string // nil means the built-in faction table
	IncludeUnfinished bool
	Verbose           bool
}

// LoadConfig loads the configuration from environment variables. A .env
// file in the working directory is read first if present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

// ParseFormat normalizes an output format name.
func ParseFormat(v string) (string, error) {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case FormatTable, FormatJSON, FormatYAML:
		return v, nil
	default:
		return "", fmt.Errorf("format must be one of table, json, yaml; got %q", v)
	}
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{Format: FormatTable}

	if v := os.Getenv("GAIASTATS_FORMAT"); strings.TrimSpace(v) != "" {
		format, err := ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("GAIASTATS_FORMAT: %w", err)
		}
		cfg.Format = format
	}

	if v := os.Getenv("GAIASTATS_FACTIONS"); v != "" {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.Factions = append(cfg.Factions, f)
			}
		}
		if len(cfg.Factions) == 0 {
			return nil, fmt.Errorf("GAIASTATS_FACTIONS is set but lists no factions")
		}
	}

	var err error
	if cfg.IncludeUnfinished, err = boolEnv("GAIASTATS_INCLUDE_UNFINISHED"); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = boolEnv("GAIASTATS_VERBOSE"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func boolEnv(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
