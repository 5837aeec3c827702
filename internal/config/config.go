package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskroll application
type Config struct {
	Storage     StorageConfig
	Roll        RollConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Dir            string        `env:"TASKROLL_STORAGE_DIR"`
	Filename       string        `env:"TASKROLL_STORAGE_FILENAME"`
	WriteTimeout   time.Duration `env:"TASKROLL_STORAGE_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TASKROLL_STORAGE_DIR_PERMISSIONS"`
}

// RollConfig holds dice-roll timing configuration
type RollConfig struct {
	PreviewInterval time.Duration `env:"TASKROLL_ROLL_PREVIEW_INTERVAL"`
	SettleDelay     time.Duration `env:"TASKROLL_ROLL_SETTLE_DELAY"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength int `env:"TASKROLL_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength int `env:"TASKROLL_VALIDATION_TASK_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TASKROLL_APP_TIMEOUT"`
	Verbose bool          `env:"TASKROLL_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStorageDir := filepath.Join(homeDir, ".taskroll")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultStorageDir,
			Filename:       "taskroll.db",
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Roll: RollConfig{
			PreviewInterval: 100 * time.Millisecond,
			SettleDelay:     2 * time.Second,
		},
		Validation: ValidationConfig{
			TaskNameMinLength: 1,
			TaskNameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStoragePath returns the full path to the storage file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TASKROLL_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TASKROLL_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if timeout := os.Getenv("TASKROLL_STORAGE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TASKROLL_STORAGE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Roll configuration
	if interval := os.Getenv("TASKROLL_ROLL_PREVIEW_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Roll.PreviewInterval = d
		}
	}
	if delay := os.Getenv("TASKROLL_ROLL_SETTLE_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Roll.SettleDelay = d
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TASKROLL_VALIDATION_TASK_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TASKROLL_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TASKROLL_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TASKROLL_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Roll.PreviewInterval <= 0 {
		return &ConfigError{Field: "roll.preview_interval", Message: "preview interval must be positive"}
	}
	if c.Roll.SettleDelay <= 0 {
		return &ConfigError{Field: "roll.settle_delay", Message: "settle delay must be positive"}
	}
	if c.Roll.PreviewInterval >= c.Roll.SettleDelay {
		return &ConfigError{Field: "roll.preview_interval", Message: "preview interval must be shorter than settle delay"}
	}

	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// Load loads configuration using the cascading strategy:
// defaults first, then environment variable overrides, then validation.
func Load() (*Config, error) {
	cfg := NewConfig()

	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
