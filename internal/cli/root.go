package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "taskroll",
		Short: "A task tracker that rolls the dice on what to do next",
		Long: `Taskroll keeps a local list of prioritized tasks and picks the next one
to work on with a weighted dice roll: high priority tasks are three times
as likely to come up as low priority ones, medium twice as likely.
Completed tasks never come up.

EXAMPLES:
  taskroll add "Write the quarterly report" -p high
  taskroll add "Water the plants" -p low
  taskroll list                            # Show all tasks, newest first
  taskroll roll                            # Roll the dice on an open task
  taskroll done 3f2a                       # Toggle a task by id prefix
  taskroll delete 3f2a                     # Delete a task (asks first)

CONFIGURATION:
  Configuration is read from environment variables:

  Storage:
    TASKROLL_STORAGE_DIR                   Storage directory (default: ~/.taskroll)
    TASKROLL_STORAGE_FILENAME              Storage filename (default: taskroll.db)
    TASKROLL_STORAGE_WRITE_TIMEOUT         Write timeout (default: 5s)

  Roll timing:
    TASKROLL_ROLL_PREVIEW_INTERVAL         Preview tick interval (default: 100ms)
    TASKROLL_ROLL_SETTLE_DELAY             Delay before the roll settles (default: 2s)

  Validation:
    TASKROLL_VALIDATION_TASK_NAME_MIN      Min task name length (default: 1)
    TASKROLL_VALIDATION_TASK_NAME_MAX      Max task name length (default: 255)

  Application:
    TASKROLL_APP_TIMEOUT                   Command timeout (default: 60s)
    TASKROLL_DEBUG                         Log swallowed storage errors to stderr

GETTING HELP:
  taskroll [command] --help                Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	addCmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Add a new task",
		Long:  "Add a new task to the list. The task starts incomplete and is prepended, newest first.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			priority, _ := cmd.Flags().GetString("priority")
			return NewAddCommand(r.app).Execute(ctx, args, priority)
		},
	}
	addCmd.Flags().StringP("priority", "p", "medium", "Task priority: high, medium or low")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks newest first. By default all tasks are shown; use --open or --done to filter.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			opts := ListOptions{}
			opts.OpenOnly, _ = cmd.Flags().GetBool("open")
			opts.DoneOnly, _ = cmd.Flags().GetBool("done")
			return NewListCommand(r.app).Execute(ctx, opts)
		},
	}
	listCmd.Flags().Bool("open", false, "Show only incomplete tasks")
	listCmd.Flags().Bool("done", false, "Show only completed tasks")

	// Done command
	doneCmd := &cobra.Command{
		Use:   "done [task id]",
		Short: "Toggle a task's completion state",
		Long:  "Mark a task done, or reopen it if already done. Accepts a full id or a unique id prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewDoneCommand(r.app).Execute(ctx, args[0])
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete [task id]",
		Short: "Delete a task",
		Long:  "Delete a task permanently. Asks for confirmation unless --yes is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			skipConfirm, _ := cmd.Flags().GetBool("yes")
			return NewDeleteCommand(r.app).Execute(ctx, args[0], skipConfirm)
		},
	}
	deleteCmd.Flags().BoolP("yes", "y", false, "Delete without asking for confirmation")

	// Roll command
	rollCmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll the dice on what to work on next",
		Long: `Pick one incomplete task at random, weighted by priority (high=3,
medium=2, low=1). The roll cycles through candidates before settling on
the final pick.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			plain, _ := cmd.Flags().GetBool("plain")
			return NewRollCommand(r.app).Execute(ctx, plain)
		},
	}
	rollCmd.Flags().Bool("plain", false, "Print the roll without the terminal animation")

	r.cmd.AddCommand(addCmd, listCmd, doneCmd, deleteCmd, rollCmd)
}

// commandContext returns a context bounded by the configured app timeout
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.app.config.Application.Timeout)
}
