package cli

import (
	"bytes"
	"testing"
	"time"

	"taskroll/internal/config"
	"taskroll/internal/roller"
	"taskroll/internal/selector"
	"taskroll/internal/storage/memory"
	"taskroll/internal/store"
)

// newTestApp wires an App against an in-memory backend with fast roll
// timing, capturing output in the returned buffer.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Roll.PreviewInterval = 5 * time.Millisecond
	cfg.Roll.SettleDelay = 30 * time.Millisecond

	taskStore := store.New(memory.New(), cfg)
	t.Cleanup(taskStore.Close)

	r := roller.New(cfg, selector.NewSource())
	t.Cleanup(r.Close)

	app := NewApp(taskStore, r, cfg)
	out := &bytes.Buffer{}
	app.SetOutput(out)

	return app, out
}
