package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all toolkit settings, populated from environment variables.
type Config struct {
	DataDir string
	PlotDir string

	LogLevel  string
	LogFormat string

	// Geographic outline used as the base layer of state maps. When
	// OutlineFile is empty, maps render points over a bare grid.
	OutlineFile   string
	OutlineRegion string

	PlotWidthIn  float64
	PlotHeightIn float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	width, err := parseInches("PLOT_WIDTH_IN", 8)
	if err != nil {
		return nil, err
	}
	height, err := parseInches("PLOT_HEIGHT_IN", 6)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:       envOrDefault("DATA_DIR", "."),
		PlotDir:       envOrDefault("PLOT_DIR", "."),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		OutlineFile:   os.Getenv("OUTLINE_FILE"),
		OutlineRegion: envOrDefault("OUTLINE_REGION", "usa"),
		PlotWidthIn:   width,
		PlotHeightIn:  height,
	}

	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	if cfg.PlotDir == "" {
		return nil, errors.New("PLOT_DIR is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInches(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}
