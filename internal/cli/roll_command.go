package cli

import (
	"context"
	"fmt"

	"taskroll/internal/selector"
	"taskroll/internal/ui"
)

// RollCommand handles the roll command
type RollCommand struct {
	app *App
}

// NewRollCommand creates a new roll command handler
func NewRollCommand(app *App) *RollCommand {
	return &RollCommand{app: app}
}

// Execute runs the roll command. The default mode shows the terminal
// animation; plain mode prints preview and result lines, which suits
// non-interactive terminals and scripts.
func (c *RollCommand) Execute(ctx context.Context, plain bool) error {
	tasks := c.app.store.Tasks()

	if len(selector.Incomplete(tasks)) == 0 {
		fmt.Fprintln(c.app.out, "No incomplete tasks to roll. Add one with 'taskroll add' or reopen a task.")
		return nil
	}

	events := c.app.roller.Roll(tasks)

	if plain {
		for ev := range events {
			switch {
			case ev.Final && ev.Result != nil:
				fmt.Fprintf(c.app.out, "Rolled: %s %s (%s)\n", ev.Result.Name, ui.PriorityBadge(ev.Result.Priority), shortID(ev.Result.ID))
			case ev.Final:
				fmt.Fprintln(c.app.out, "No incomplete tasks to roll.")
			case ev.Preview != nil:
				fmt.Fprintf(c.app.out, "  ... %s\n", ev.Preview.Name)
			}
		}
		return nil
	}

	if _, _, err := ui.RunRoll(events); err != nil {
		return fmt.Errorf("failed to run roll animation: %w", err)
	}
	return nil
}
