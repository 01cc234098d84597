// Package config loads tool configuration from rc files, environment
// variables, and flags through viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the modtriage configuration.
type Config struct {
	Workflow      string   `mapstructure:"workflow"`
	WorkflowPaths []string `mapstructure:"workflowPaths"`
	Format        string   `mapstructure:"format"`
	Output        string   `mapstructure:"output"`
	Quiet         bool     `mapstructure:"quiet"`
	Verbose       bool     `mapstructure:"verbose"`
	ShowScores    bool     `mapstructure:"showScores"`
	MinDots       int      `mapstructure:"minDots"`
	NamesFile     string   `mapstructure:"namesFile"`
	LockFile      string   `mapstructure:"lockFile"`
}

// LoadConfig loads configuration from various sources. The workflow
// argument, when non-empty, overrides the configured default.
func LoadConfig(workflowOverride string) (*Config, error) {
	viper.SetDefault("workflow", "basic")
	viper.SetDefault("workflowPaths", []string{"workflows/*.yaml"})
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("showScores", false)
	viper.SetDefault("minDots", 1)

	viper.SetEnvPrefix("MODTRIAGE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if workflowOverride != "" {
		config.Workflow = workflowOverride
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Workflow == "" {
		return fmt.Errorf("workflow name must not be empty")
	}

	if config.MinDots < 1 || config.MinDots > 6 {
		return fmt.Errorf("minDots must be between 1 and 6")
	}

	return nil
}
