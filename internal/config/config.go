package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFiles are looked up in the working directory, first match wins.
var ConfigFiles = []string{".thinkcheckrc.json", ".thinkcheckrc.yaml", ".thinkcheckrc.yml"}

// Config represents the thinkcheck configuration
type Config struct {
	Format      string    `mapstructure:"format"`
	Output      string    `mapstructure:"output"`
	Quiet       bool      `mapstructure:"quiet"`
	Verbose     bool      `mapstructure:"verbose"`
	NoColor     bool      `mapstructure:"noColor"`
	MinScore    int       `mapstructure:"minScore"`
	Concurrency int       `mapstructure:"concurrency"`
	Rubric      string    `mapstructure:"rubric"`
	Log         LogConfig `mapstructure:"log"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from defaults, config files, environment
// variables and any flags already bound to viper.
func LoadConfig() (*Config, error) {
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("noColor", false)
	viper.SetDefault("minScore", 0)
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("rubric", "")
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "console")

	for _, path := range ConfigFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix("THINKCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.MinScore < 0 || config.MinScore > 100 {
		return fmt.Errorf("min score must be between 0 and 100, got %d", config.MinScore)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "disabled":
	default:
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "console" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s. Must be 'console' or 'json'", config.Log.Format)
	}

	return nil
}
