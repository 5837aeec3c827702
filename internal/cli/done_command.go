package cli

import (
	"context"
	"fmt"
)

// DoneCommand handles the done command, toggling a task's completion state
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute runs the done command for the task matching the given id or
// unique id prefix
func (c *DoneCommand) Execute(ctx context.Context, id string) error {
	task, err := c.app.findTask(id)
	if err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}

	c.app.store.ToggleDone(task.ID)

	if task.Done {
		fmt.Fprintf(c.app.out, "Reopened task: %s\n", task.Name)
	} else {
		fmt.Fprintf(c.app.out, "Completed task: %s\n", task.Name)
	}
	return nil
}
