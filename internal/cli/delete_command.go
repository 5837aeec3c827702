package cli

import (
	"context"
	"fmt"
	"strings"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command. Deletion asks for confirmation unless
// skipConfirm is set; the store itself never requires confirmation.
func (c *DeleteCommand) Execute(ctx context.Context, id string, skipConfirm bool) error {
	task, err := c.app.findTask(id)
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	if !skipConfirm {
		fmt.Fprintf(c.app.out, "Delete task %q? [y/N]: ", task.Name)

		var input string
		fmt.Fscanln(c.app.in, &input)
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes":
			// Confirmed
		default:
			fmt.Fprintln(c.app.out, "Delete cancelled.")
			return nil
		}
	}

	c.app.store.Delete(task.ID)
	fmt.Fprintf(c.app.out, "Deleted task: %s\n", task.Name)
	return nil
}
