// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the settings that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	Storage string `json:"storage,omitempty" yaml:"storage,omitempty" validate:"omitempty,oneof=memory file sqlite"` // Persistence backend
	DataDir string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`                                              // Directory for file and sqlite backends

	// Export
	ExportDir    string `json:"export_dir,omitempty" yaml:"export_dir,omitempty"`                                      // Directory receiving exported files
	ExportFormat string `json:"export_format,omitempty" yaml:"export_format,omitempty" validate:"omitempty,oneof=html pdf"` // Default export format
	ChromePath   string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`                                    // Chrome binary for PDF export

	// Generation
	GenerationDelayMS   int  `json:"generation_delay_ms,omitempty" yaml:"generation_delay_ms,omitempty" validate:"gte=0,lte=60000"` // Canned generator latency
	SerializeGeneration bool `json:"serialize_generation,omitempty" yaml:"serialize_generation,omitempty"`                          // Allow one generation at a time

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty" validate:"gte=0,lte=65535"` // HTTP listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// Environment variables that override file values
const (
	EnvDataDir    = "RESUME_DATA_DIR"
	EnvChromePath = "CHROME_PATH"
	EnvPort       = "PORT"
)

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Storage:           "file",
		DataDir:           ".resume-builder",
		ExportDir:         "exports",
		ExportFormat:      "html",
		GenerationDelayMS: 1500,
		Port:              8080,
	}
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file, or YAML when the extension is .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here since defaults fill them after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: %s failed %q (got %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Storage != "" && c.Storage != "memory" && c.DataDir != "" {
		if info, err := os.Stat(c.DataDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: data_dir is not a directory: %s", c.DataDir)
		}
	}

	return nil
}

// ApplyEnv overrides fields from the environment
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvChromePath); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s is not a number: %q", EnvPort, v)
		}
		c.Port = port
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Storage == "" {
		result.Storage = defaults.Storage
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.ExportDir == "" {
		result.ExportDir = defaults.ExportDir
	}
	if result.ExportFormat == "" {
		result.ExportFormat = defaults.ExportFormat
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Int fields: use default if zero
	if result.GenerationDelayMS == 0 {
		result.GenerationDelayMS = defaults.GenerationDelayMS
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// GenerationDelay returns the canned generator latency
func (c *Config) GenerationDelay() time.Duration {
	return time.Duration(c.GenerationDelayMS) * time.Millisecond
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
