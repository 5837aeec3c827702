package selector

import (
	"math/rand"

	"taskroll/internal/domain"
)

// Source provides the randomness for picks. *rand.Rand satisfies it, which
// lets tests drive selection with a seeded source.
type Source interface {
	Intn(n int) int
}

// defaultSource draws from math/rand's shared, goroutine-safe source.
type defaultSource struct{}

func (defaultSource) Intn(n int) int {
	return rand.Intn(n)
}

// NewSource returns the default random source.
func NewSource() Source {
	return defaultSource{}
}

// Incomplete returns the subset of tasks with Done == false, preserving
// order. Only these are eligible for a roll.
func Incomplete(tasks []domain.Task) []domain.Task {
	pool := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Done {
			pool = append(pool, t)
		}
	}
	return pool
}

// Pick chooses one incomplete task at random, weighted by priority
// (high=3, medium=2, low=1). Each task's selection probability is its
// weight divided by the sum of weights over the incomplete pool. The
// second return value is false when no incomplete task exists; that is a
// valid terminal outcome, not an error.
func Pick(tasks []domain.Task, src Source) (domain.Task, bool) {
	pool := Incomplete(tasks)
	if len(pool) == 0 {
		return domain.Task{}, false
	}

	total := 0
	for _, t := range pool {
		total += t.Priority.Weight()
	}
	if total <= 0 {
		return domain.Task{}, false
	}

	// Draw one entry from the virtual multiset in which each task appears
	// weight times.
	n := src.Intn(total)
	for _, t := range pool {
		n -= t.Priority.Weight()
		if n < 0 {
			return t, true
		}
	}

	// Unreachable: the weights sum to total.
	return pool[len(pool)-1], true
}

// Sample chooses one incomplete task uniformly at random, ignoring
// weights. The roll preview uses it for visual feedback between ticks.
func Sample(tasks []domain.Task, src Source) (domain.Task, bool) {
	pool := Incomplete(tasks)
	if len(pool) == 0 {
		return domain.Task{}, false
	}
	return pool[src.Intn(len(pool))], true
}
