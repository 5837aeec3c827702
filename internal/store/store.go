package store

import (
	"context"
	"sync"
	"time"

	"taskroll/internal/config"
	"taskroll/internal/domain"
	"taskroll/internal/errors"
	"taskroll/internal/logging"
	"taskroll/internal/storage"
	"taskroll/internal/validation"
)

// StorageKey is the single fixed key under which the full task list
// snapshot is persisted.
const StorageKey = "taskroll:tasks"

// TaskStore owns the canonical in-memory task list and mirrors it to the
// storage backend. Mutations apply to the in-memory list synchronously and
// schedule an asynchronous full-snapshot write; the in-memory list stays
// authoritative for the session even when writes fail.
//
// Snapshot writes flow through a single writer goroutine so the backend
// never observes an older snapshot landing after a newer one. Consecutive
// unwritten snapshots coalesce: only the newest pending payload is written.
type TaskStore struct {
	mu    sync.Mutex
	tasks []domain.Task

	backend      storage.Backend
	writeTimeout time.Duration
	validator    *validation.TaskValidator

	pendingMu sync.Mutex
	pending   *string

	kick      chan struct{}
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a TaskStore backed by the given storage backend, loads any
// persisted tasks and starts the persistence writer. A backend that is
// unavailable or holds a corrupt payload yields an empty list; startup
// never fails on storage problems.
func New(backend storage.Backend, cfg *config.Config) *TaskStore {
	s := &TaskStore{
		backend:      backend,
		writeTimeout: cfg.Storage.WriteTimeout,
		validator: validation.NewTaskValidatorWithLimits(
			cfg.Validation.TaskNameMinLength,
			cfg.Validation.TaskNameMaxLength,
		),
		kick: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.Load(ctx)

	go s.writeLoop()

	return s
}

// Load reads the persisted snapshot and replaces the in-memory list with it.
// Any read failure or malformed payload is treated as "no prior data".
func (s *TaskStore) Load(ctx context.Context) []domain.Task {
	var tasks []domain.Task

	payload, found, err := s.backend.Get(ctx, StorageKey)
	switch {
	case err != nil:
		logging.Debugf("taskroll: load failed, starting with empty list: %v\n", err)
	case !found:
		// First run, nothing persisted yet.
	default:
		tasks, err = decodeTasks(payload)
		if err != nil {
			logging.Debugf("taskroll: discarding malformed snapshot: %v\n", err)
			tasks = nil
		}
	}

	s.mu.Lock()
	s.tasks = tasks
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return snapshot
}

// Tasks returns a snapshot of the current task list, newest first.
func (s *TaskStore) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Add validates the name, creates a new incomplete task and prepends it to
// the list. It returns a validation error for an empty or whitespace-only
// name without mutating the list.
func (s *TaskStore) Add(name string, priority domain.Priority) (domain.Task, error) {
	trimmed, err := s.validator.GetValidTaskName(name)
	if err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task name", err)
	}
	if err := s.validator.ValidatePriority(priority); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid priority", err)
	}

	task := domain.NewTask(trimmed, priority)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append([]domain.Task{task}, s.tasks...)
	s.schedulePersistLocked()

	return task, nil
}

// ToggleDone flips the done flag of the task with the given id. An unknown
// id is a silent no-op, not an error.
func (s *TaskStore) ToggleDone(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
			s.schedulePersistLocked()
			return
		}
	}
}

// Delete removes the task with the given id, keeping the order of the
// remaining tasks. An unknown id is a silent no-op.
func (s *TaskStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.schedulePersistLocked()
			return
		}
	}
}

// Close stops the persistence writer, flushing any pending snapshot first.
// The store must not be mutated after Close.
func (s *TaskStore) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.done
}

// snapshotLocked copies the task list. Callers must hold s.mu.
func (s *TaskStore) snapshotLocked() []domain.Task {
	snapshot := make([]domain.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot
}

// schedulePersistLocked records the current list as the pending snapshot and
// wakes the writer. Callers must hold s.mu. A newer snapshot replaces an
// unwritten older one, so the backend only ever sees writes in issue order.
func (s *TaskStore) schedulePersistLocked() {
	payload, err := encodeTasks(s.tasks)
	if err != nil {
		logging.Debugf("taskroll: encoding snapshot failed: %v\n", err)
		return
	}

	s.pendingMu.Lock()
	s.pending = &payload
	s.pendingMu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
		// Writer already has a wake-up queued.
	}
}

// writeLoop is the single persistence writer. It drains pending snapshots
// until the store is closed, then flushes one final time.
func (s *TaskStore) writeLoop() {
	defer close(s.done)

	for {
		select {
		case <-s.kick:
			s.flush()
		case <-s.quit:
			s.flush()
			return
		}
	}
}

// flush writes the pending snapshot, if any. Write failures are logged and
// swallowed; durability is lost but the session continues.
func (s *TaskStore) flush() {
	s.pendingMu.Lock()
	payload := s.pending
	s.pending = nil
	s.pendingMu.Unlock()

	if payload == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	if err := s.backend.Set(ctx, StorageKey, *payload); err != nil {
		if errors.ShouldLogError(err) {
			logging.Debugf("taskroll: persisting snapshot failed: %v\n", err)
		}
	}
}
