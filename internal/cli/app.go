package cli

import (
	"io"
	"os"
	"strings"

	"taskroll/internal/config"
	"taskroll/internal/domain"
	"taskroll/internal/errors"
	"taskroll/internal/roller"
	"taskroll/internal/store"
)

// App bundles the core components and I/O streams the command handlers
// work against.
type App struct {
	store        *store.TaskStore
	roller       *roller.Roller
	config       *config.Config
	out          io.Writer
	in           io.Reader
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(taskStore *store.TaskStore, r *roller.Roller, cfg *config.Config) *App {
	return &App{
		store:        taskStore,
		roller:       r,
		config:       cfg,
		out:          os.Stdout,
		in:           os.Stdin,
		errorHandler: NewErrorHandler(),
	}
}

// SetOutput redirects command output, used by tests
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// SetInput redirects interactive input, used by tests
func (a *App) SetInput(r io.Reader) {
	a.in = r
}

// findTask resolves a task by full id or unique id prefix. An unknown id
// yields a NotFound error, an ambiguous prefix an InvalidInput error.
func (a *App) findTask(id string) (domain.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Task{}, errors.NewInvalidInputError("task_id", id, "task id is required")
	}

	var matches []domain.Task
	for _, t := range a.store.Tasks() {
		if t.ID == id {
			return t, nil
		}
		if strings.HasPrefix(t.ID, id) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Task{}, errors.NewNotFoundError("task", id)
	case 1:
		return matches[0], nil
	default:
		return domain.Task{}, errors.NewInvalidInputError("task_id", id, "id prefix matches more than one task")
	}
}

// shortID returns the display form of a task id
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
