package store

import (
	"encoding/json"
	"strings"
	"time"

	"taskroll/internal/domain"
)

// taskRecord is the persisted representation of a task. The whole list is
// serialized as one JSON array under the store's single storage key.
type taskRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Priority  string    `json:"priority"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// encodeTasks serializes the full task list into the snapshot payload.
func encodeTasks(tasks []domain.Task) (string, error) {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		records[i] = taskRecord{
			ID:        t.ID,
			Name:      t.Name,
			Priority:  t.Priority.String(),
			Done:      t.Done,
			CreatedAt: t.CreatedAt,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeTasks parses a snapshot payload back into tasks. A payload that is
// not a JSON array fails as a whole; individual records that violate the
// task invariants (missing id, blank name, unknown priority, duplicate id)
// are dropped rather than failing the load.
func decodeTasks(payload string) ([]domain.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		priority, err := domain.ParsePriority(r.Priority)
		if err != nil {
			continue
		}

		seen[r.ID] = true
		tasks = append(tasks, domain.Task{
			ID:        r.ID,
			Name:      r.Name,
			Priority:  priority,
			Done:      r.Done,
			CreatedAt: r.CreatedAt,
		})
	}

	return tasks, nil
}
