package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// AppConfig holds the structure of the configuration
type AppConfig struct {
	Width       int    `json:"width"`  // screen width before scaling, multiple of 10
	Height      int    `json:"height"` // screen height before scaling, multiple of 10
	Scale       int    `json:"scale"`
	Seed        uint64 `json:"seed"`        // 0 picks a time based seed
	Frontend    string `json:"frontend"`    // "window" or "terminal"
	TraceLevel  string `json:"trace_level"` // raylib trace output: info, warning, error, none
	LogFile     string `json:"log_file"`
	SnapshotDir string `json:"snapshot_dir"`
}

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

var traceLevels = map[string]bool{
	"info":    true,
	"warning": true,
	"error":   true,
	"none":    true,
}

// Default returns the configuration used when no file is given.
func Default() *AppConfig {
	return &AppConfig{
		Width:       200,
		Height:      200,
		Scale:       2,
		Frontend:    FrontendWindow,
		TraceLevel:  "warning",
		SnapshotDir: "snapshots",
	}
}

// Load reads the file at filePath over the defaults. An empty path returns the defaults.
func Load(filePath string) (*AppConfig, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", filePath, err)
	}
	return cfg, nil
}

// Validate checks the fields the game itself does not check. Screen
// dimensions are left to the game so it can report its own setup error.
func (c *AppConfig) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if !traceLevels[c.TraceLevel] {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
