package cli

import (
	"context"
	"testing"

	"taskroll/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollCommand_EmptyPool(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, NewRollCommand(app).Execute(context.Background(), true))
	assert.Contains(t, out.String(), "No incomplete tasks to roll")
}

func TestRollCommand_AllTasksDone(t *testing.T) {
	app, out := newTestApp(t)

	task, err := app.store.Add("finished", domain.PriorityHigh)
	require.NoError(t, err)
	app.store.ToggleDone(task.ID)

	require.NoError(t, NewRollCommand(app).Execute(context.Background(), true))
	assert.Contains(t, out.String(), "No incomplete tasks to roll")
}

func TestRollCommand_PlainModeSettlesOnIncompleteTask(t *testing.T) {
	app, out := newTestApp(t)

	only, err := app.store.Add("the only option", domain.PriorityLow)
	require.NoError(t, err)
	done, err := app.store.Add("already finished", domain.PriorityHigh)
	require.NoError(t, err)
	app.store.ToggleDone(done.ID)

	require.NoError(t, NewRollCommand(app).Execute(context.Background(), true))

	output := out.String()
	assert.Contains(t, output, "Rolled: the only option")
	assert.Contains(t, output, shortID(only.ID))
	assert.NotContains(t, output, "Rolled: already finished")
}

func TestRollCommand_RepeatedRollsAreIndependent(t *testing.T) {
	app, out := newTestApp(t)

	_, err := app.store.Add("candidate a", domain.PriorityHigh)
	require.NoError(t, err)
	_, err = app.store.Add("candidate b", domain.PriorityLow)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		out.Reset()
		require.NoError(t, NewRollCommand(app).Execute(context.Background(), true))
		assert.Contains(t, out.String(), "Rolled: ")
	}
}
