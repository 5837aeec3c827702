package cli

import (
	"context"
	"fmt"
	"strings"

	"taskroll/internal/domain"
	"taskroll/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command. The task name is the joined arguments;
// priority defaults to medium when the flag is empty.
func (c *AddCommand) Execute(ctx context.Context, args []string, priorityFlag string) error {
	name := strings.Join(args, " ")

	priority := domain.PriorityMedium
	if priorityFlag != "" {
		parsed, err := domain.ParsePriority(priorityFlag)
		if err != nil {
			return errors.NewInvalidInputError("priority", priorityFlag, "must be high, medium or low")
		}
		priority = parsed
	}

	task, err := c.app.store.Add(name, priority)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added %s priority task: %s (%s)\n", task.Priority, task.Name, shortID(task.ID))
	return nil
}
