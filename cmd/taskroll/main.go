package main

import (
	"fmt"
	"os"

	"taskroll/internal/cli"
	"taskroll/internal/config"
	"taskroll/internal/roller"
	"taskroll/internal/selector"
	"taskroll/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	factory := NewBackendFactory(getEnvironment(), cfg)
	backend, err := factory.CreateBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating storage backend: %v\n", err)
		os.Exit(1)
	}

	taskStore := store.New(backend, cfg)
	r := roller.New(cfg, selector.NewSource())

	app := cli.NewApp(taskStore, r, cfg)
	root := cli.NewRootCommand(app)

	runErr := root.Execute()

	// Teardown cancels pending roll timers and flushes any pending
	// snapshot before the process exits.
	r.Close()
	taskStore.Close()
	backend.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
