package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCommand(app)
	root.cmd.SetArgs(args)
	root.cmd.SetOut(&bytes.Buffer{})
	root.cmd.SetErr(&bytes.Buffer{})
	return root.cmd.Execute()
}

func TestRootCommand_AddThenList(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, executeRoot(t, app, "add", "Ship", "the", "thing", "-p", "high"))
	assert.Contains(t, out.String(), "Added high priority task: Ship the thing")

	out.Reset()
	require.NoError(t, executeRoot(t, app, "list"))
	assert.Contains(t, out.String(), "Ship the thing")
}

func TestRootCommand_AddRequiresName(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Error(t, executeRoot(t, app, "add"))
}

func TestRootCommand_DoneByPrefix(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, executeRoot(t, app, "add", "Toggle target"))
	task := app.store.Tasks()[0]

	out.Reset()
	require.NoError(t, executeRoot(t, app, "done", task.ID[:8]))
	assert.Contains(t, out.String(), "Completed task: Toggle target")
}

func TestRootCommand_DeleteWithYes(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, executeRoot(t, app, "add", "Doomed task"))
	task := app.store.Tasks()[0]

	out.Reset()
	require.NoError(t, executeRoot(t, app, "delete", task.ID, "--yes"))
	assert.Contains(t, out.String(), "Deleted task: Doomed task")
	assert.Empty(t, app.store.Tasks())
}

func TestRootCommand_RollPlain(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, executeRoot(t, app, "add", "Only candidate"))

	out.Reset()
	require.NoError(t, executeRoot(t, app, "roll", "--plain"))
	assert.Contains(t, out.String(), "Rolled: Only candidate")
}

func TestRootCommand_ListFilters(t *testing.T) {
	app, out := newTestApp(t)

	require.NoError(t, executeRoot(t, app, "add", "open one"))
	require.NoError(t, executeRoot(t, app, "add", "done one"))
	doneTask := app.store.Tasks()[0]
	app.store.ToggleDone(doneTask.ID)

	out.Reset()
	require.NoError(t, executeRoot(t, app, "list", "--open"))
	assert.Contains(t, out.String(), "open one")
	assert.NotContains(t, out.String(), "done one")

	out.Reset()
	require.NoError(t, executeRoot(t, app, "list", "--done"))
	assert.Contains(t, out.String(), "done one")
	assert.NotContains(t, out.String(), "open one")
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Error(t, executeRoot(t, app, "bogus"))
}
