package main

import (
	"fmt"
	"os"

	"taskroll/internal/config"
	"taskroll/internal/storage"
	"taskroll/internal/storage/memory"
	"taskroll/internal/storage/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// getEnvironment determines the current environment from TASKROLL_ENV
func getEnvironment() Environment {
	switch os.Getenv("TASKROLL_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}

// BackendFactory creates storage backends based on environment
type BackendFactory struct {
	env Environment
	cfg *config.Config
}

// NewBackendFactory creates a new backend factory for the given environment
func NewBackendFactory(env Environment, cfg *config.Config) *BackendFactory {
	return &BackendFactory{env: env, cfg: cfg}
}

// CreateBackend creates a storage backend based on the current environment
func (bf *BackendFactory) CreateBackend() (storage.Backend, error) {
	switch bf.env {
	case Development:
		// Local database file in the working directory
		backend, err := sqlite.New("taskroll.db")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize development storage: %w", err)
		}
		return backend, nil

	case Testing:
		// No disk access at all
		return memory.New(), nil

	default:
		return bf.createProductionBackend()
	}
}

// createProductionBackend creates the default on-disk storage under the
// configured storage directory
func (bf *BackendFactory) createProductionBackend() (storage.Backend, error) {
	perms := os.FileMode(bf.cfg.Storage.DirPermissions)
	if err := os.MkdirAll(bf.cfg.Storage.Dir, perms); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	backend, err := sqlite.New(bf.cfg.GetStoragePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return backend, nil
}
