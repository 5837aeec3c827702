package cli

import (
	"context"
	"strings"
	"testing"

	"taskroll/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCommand_WithYesFlag(t *testing.T) {
	app, out := newTestApp(t)

	task, err := app.store.Add("delete me", domain.PriorityLow)
	require.NoError(t, err)

	require.NoError(t, NewDeleteCommand(app).Execute(context.Background(), task.ID, true))
	assert.Contains(t, out.String(), "Deleted task: delete me")
	assert.Empty(t, app.store.Tasks())
}

func TestDeleteCommand_ConfirmationAccepted(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "lowercase y",
			input: "y\n",
		},
		{
			name:  "yes",
			input: "yes\n",
		},
		{
			name:  "uppercase Y",
			input: "Y\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t)
			app.SetInput(strings.NewReader(tt.input))

			task, err := app.store.Add("confirmed", domain.PriorityMedium)
			require.NoError(t, err)

			require.NoError(t, NewDeleteCommand(app).Execute(context.Background(), task.ID, false))
			assert.Contains(t, out.String(), "Deleted task: confirmed")
			assert.Empty(t, app.store.Tasks())
		})
	}
}

func TestDeleteCommand_ConfirmationDeclined(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "explicit no",
			input: "n\n",
		},
		{
			name:  "empty answer defaults to no",
			input: "\n",
		},
		{
			name:  "anything else is no",
			input: "maybe\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t)
			app.SetInput(strings.NewReader(tt.input))

			task, err := app.store.Add("keep me", domain.PriorityMedium)
			require.NoError(t, err)

			require.NoError(t, NewDeleteCommand(app).Execute(context.Background(), task.ID, false))
			assert.Contains(t, out.String(), "Delete cancelled")
			require.Len(t, app.store.Tasks(), 1)
		})
	}
}

func TestDeleteCommand_UnknownID(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.store.Add("survivor", domain.PriorityLow)
	require.NoError(t, err)

	err = NewDeleteCommand(app).Execute(context.Background(), "not-real", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	require.Len(t, app.store.Tasks(), 1)
}

func TestDeleteCommand_RemovesExactlyOne(t *testing.T) {
	app, _ := newTestApp(t)

	var tasks []domain.Task
	for _, name := range []string{"a", "b", "c"} {
		task, err := app.store.Add(name, domain.PriorityLow)
		require.NoError(t, err)
		tasks = append(tasks, task)
	}

	require.NoError(t, NewDeleteCommand(app).Execute(context.Background(), tasks[1].ID, true))

	remaining := app.store.Tasks()
	require.Len(t, remaining, 2)
	for _, task := range remaining {
		assert.NotEqual(t, tasks[1].ID, task.ID)
	}
}
