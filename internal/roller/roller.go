package roller

import (
	"context"
	"sync"
	"time"

	"taskroll/internal/config"
	"taskroll/internal/domain"
	"taskroll/internal/selector"
)

// State is the roll lifecycle state.
type State int

const (
	StateIdle State = iota
	StatePreviewing
	StateSettled
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreviewing:
		return "previewing"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Event is a roll progress notification. Preview events carry a uniformly
// sampled task for visual feedback; the single terminal event has Final set
// and carries the weighted pick in Result, or a nil Result when no
// incomplete task exists.
type Event struct {
	Preview *domain.Task
	Final   bool
	Result  *domain.Task
}

// Roller runs the two-phase roll sequence: a rapid preview phase ticking on
// a fixed interval, then a settle point where the weighted pick becomes the
// result. Starting a new roll cancels the previous roll's timers first, so
// at most one roll can deliver a terminal event at a time.
type Roller struct {
	interval time.Duration
	settle   time.Duration
	src      selector.Source

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
}

// New creates an idle Roller using the configured roll timing.
func New(cfg *config.Config, src selector.Source) *Roller {
	return &Roller{
		interval: cfg.Roll.PreviewInterval,
		settle:   cfg.Roll.SettleDelay,
		src:      src,
		state:    StateIdle,
	}
}

// State returns the current roll state.
func (r *Roller) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Roll starts a new roll over the given task snapshot and returns the event
// channel for this roll. Any in-flight roll is cancelled before the new
// timers are scheduled; the cancelled roll's channel closes without a
// terminal event. The returned channel closes after the terminal event.
func (r *Roller) Roll(tasks []domain.Task) <-chan Event {
	pool := selector.Incomplete(tasks)

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.state = StatePreviewing
	r.mu.Unlock()

	events := make(chan Event, 1)
	go r.run(ctx, pool, events)

	return events
}

// Close cancels any in-flight roll and returns the roller to idle. No
// timer fires and no state changes after Close returns.
func (r *Roller) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.state = StateIdle
}

func (r *Roller) run(ctx context.Context, pool []domain.Task, events chan<- Event) {
	defer close(events)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	settle := time.NewTimer(r.settle)
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if t, ok := selector.Sample(pool, r.src); ok {
				// Previews are visual only; drop the tick when the
				// consumer is behind rather than stalling the roll.
				select {
				case events <- Event{Preview: &t}:
				default:
				}
			}

		case <-settle.C:
			ev := Event{Final: true}
			if t, ok := selector.Pick(pool, r.src); ok {
				ev.Result = &t
			}
			if !r.settleUnlessCancelled(ctx) {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
			}
			return
		}
	}
}

// settleUnlessCancelled transitions to Settled, unless this roll was
// cancelled, in which case the newer roll owns the state.
func (r *Roller) settleUnlessCancelled(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	r.state = StateSettled
	return true
}
