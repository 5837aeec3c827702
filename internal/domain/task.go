package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the closed set of task priorities used to weight the dice roll.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// Weight returns the integer bias applied during weighted random selection.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether the priority is one of the three enumerated values.
func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// String returns the canonical lowercase name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// ParsePriority converts a priority name into a Priority value.
// Matching is case-insensitive and accepts single-letter shortcuts.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return PriorityHigh, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	default:
		return 0, fmt.Errorf("unknown priority: %q", s)
	}
}

// Task represents a single unit of work in the domain model.
// All fields except Done are immutable after creation.
type Task struct {
	ID        string
	Name      string
	Priority  Priority
	Done      bool
	CreatedAt time.Time
}

// NewTask creates a new incomplete Task with a fresh unique id and the
// current time as its creation timestamp. The name is stored as given;
// callers validate and trim before construction.
func NewTask(name string, priority Priority) Task {
	return Task{
		ID:        uuid.NewString(),
		Name:      name,
		Priority:  priority,
		Done:      false,
		CreatedAt: time.Now(),
	}
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
