package cli

import (
	"context"
	"fmt"

	"taskroll/internal/domain"
	"taskroll/internal/ui"
)

// ListOptions controls which tasks the list command shows
type ListOptions struct {
	OpenOnly bool
	DoneOnly bool
}

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command, printing tasks newest first
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	tasks := c.app.store.Tasks()

	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if opts.OpenOnly && t.Done {
			continue
		}
		if opts.DoneOnly && !t.Done {
			continue
		}
		filtered = append(filtered, t)
	}

	if len(filtered) == 0 {
		fmt.Fprintln(c.app.out, "No tasks found. Add one with 'taskroll add'.")
		return nil
	}

	for _, t := range filtered {
		fmt.Fprintf(c.app.out, "%s %s %s  %s\n", checkbox(t), ui.PriorityBadge(t.Priority), ui.TaskName(t), shortID(t.ID))
	}

	return nil
}

func checkbox(t domain.Task) string {
	if t.Done {
		return "[x]"
	}
	return "[ ]"
}
