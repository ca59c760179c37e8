package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-repository configuration file.
const ConfigFileName = ".devloop.yaml"

// Default values for Config.
const (
	DefaultFormatCommand = "gofmt"
	DefaultBuildExample  = "termion"
	DefaultOutputDir     = "bin"
	DefaultGatePrompt    = "press enter to launch %s "
	DefaultLaunchTarget  = "vi.go"
	DefaultLaunchLog     = "termion.log"
)

// DefaultFormat returns formatter settings with sensible default values.
func DefaultFormat() Format {
	return Format{
		Command: DefaultFormatCommand,
		Args:    []string{"-l", "-w", "."},
	}
}

// DefaultBuild returns build settings with sensible default values.
func DefaultBuild() Build {
	return Build{
		Example:   DefaultBuildExample,
		OutputDir: DefaultOutputDir,
		Release:   true,
	}
}

// DefaultGate returns gate settings with sensible default values.
func DefaultGate() Gate {
	return Gate{Prompt: DefaultGatePrompt}
}

// DefaultLaunch returns launch settings with sensible default values.
func DefaultLaunch() Launch {
	return Launch{
		Target: DefaultLaunchTarget,
		Log:    DefaultLaunchLog,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Format: DefaultFormat(),
		Build:  DefaultBuild(),
		Gate:   DefaultGate(),
		Launch: DefaultLaunch(),
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses .devloop.yaml from the given base path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(basePath string) (*Config, error) {
	configPath := filepath.Join(basePath, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Format.Command == "" {
		return ValidationError{Field: "format.command", Message: "required field is empty"}
	}
	if cfg.Build.Example == "" {
		return ValidationError{Field: "build.example", Message: "required field is empty"}
	}
	if strings.ContainsAny(cfg.Build.Example, `/\`) {
		return ValidationError{Field: "build.example", Message: "must be a bare example name"}
	}
	if cfg.Build.OutputDir == "" {
		return ValidationError{Field: "build.output_dir", Message: "required field is empty"}
	}
	if cfg.Gate.Prompt == "" {
		return ValidationError{Field: "gate.prompt", Message: "required field is empty"}
	}
	if cfg.Launch.Target == "" {
		return ValidationError{Field: "launch.target", Message: "required field is empty"}
	}
	if cfg.Launch.Log == "" {
		return ValidationError{Field: "launch.log", Message: "required field is empty"}
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
