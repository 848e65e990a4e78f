package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig represents the on-disk server configuration
type FileConfig struct {
	Server Settings `hcl:"server,block"`
}

// Settings contains server-level configuration
type Settings struct {
	Address         string `hcl:"address,optional"`
	Port            int    `hcl:"port,optional"`
	LogLevel        string `hcl:"log_level,optional"`
	MaxPlayers      int    `hcl:"max_players,optional"`
	SummaryInterval string `hcl:"summary_interval,optional"`
}

// DefaultFileConfig returns default server configuration
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Server: Settings{
			Address:         "localhost",
			Port:            8080,
			LogLevel:        "info",
			MaxPlayers:      10,
			SummaryInterval: "1m",
		},
	}
}

// LoadFileConfig loads server configuration from an HCL file. A missing file
// yields the defaults.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultFileConfig()
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Server.MaxPlayers == 0 {
		config.Server.MaxPlayers = defaults.Server.MaxPlayers
	}
	if config.Server.SummaryInterval == "" {
		config.Server.SummaryInterval = defaults.Server.SummaryInterval
	}

	return &config, nil
}

// Validate validates the server configuration
func (c *FileConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if c.Server.MaxPlayers < 1 || c.Server.MaxPlayers > 10 {
		return fmt.Errorf("max_players must be between 1 and 10, got %d", c.Server.MaxPlayers)
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", c.Server.LogLevel)
	}

	if _, err := time.ParseDuration(c.Server.SummaryInterval); err != nil {
		return fmt.Errorf("invalid summary_interval: %w", err)
	}

	return nil
}

// Addr returns the full listen address
func (c *FileConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// RuntimeConfig converts the file configuration into the server's runtime
// Config. Validate must have been called first.
func (c *FileConfig) RuntimeConfig() Config {
	interval, _ := time.ParseDuration(c.Server.SummaryInterval)
	return Config{
		MaxPlayers:      c.Server.MaxPlayers,
		SummaryInterval: interval,
	}
}
