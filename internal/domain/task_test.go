package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Weight(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		expected int
	}{
		{
			name:     "high priority weighs 3",
			priority: PriorityHigh,
			expected: 3,
		},
		{
			name:     "medium priority weighs 2",
			priority: PriorityMedium,
			expected: 2,
		},
		{
			name:     "low priority weighs 1",
			priority: PriorityLow,
			expected: 1,
		},
		{
			name:     "zero value weighs nothing",
			priority: Priority(0),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.priority.Weight())
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Priority
		expectErr bool
	}{
		{
			name:     "parses high",
			input:    "high",
			expected: PriorityHigh,
		},
		{
			name:     "parses medium",
			input:    "medium",
			expected: PriorityMedium,
		},
		{
			name:     "parses low",
			input:    "low",
			expected: PriorityLow,
		},
		{
			name:     "parses mixed case",
			input:    "High",
			expected: PriorityHigh,
		},
		{
			name:     "parses single letter shortcut",
			input:    "m",
			expected: PriorityMedium,
		},
		{
			name:     "parses with surrounding whitespace",
			input:    "  low  ",
			expected: PriorityLow,
		},
		{
			name:      "rejects unknown value",
			input:     "urgent",
			expectErr: true,
		},
		{
			name:      "rejects empty string",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePriority(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "high", PriorityHigh.String())
	assert.Equal(t, "medium", PriorityMedium.String())
	assert.Equal(t, "low", PriorityLow.String())
	assert.Equal(t, "unknown", Priority(42).String())
}

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityHigh.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityLow.IsValid())
	assert.False(t, Priority(0).IsValid())
	assert.False(t, Priority(4).IsValid())
}

func TestNewTask(t *testing.T) {
	task := NewTask("Write report", PriorityHigh)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Write report", task.Name)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.False(t, task.Done)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestNewTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask("Task", PriorityLow)
		assert.False(t, seen[task.ID], "duplicate task id: %s", task.ID)
		seen[task.ID] = true
	}
}

func TestTask_String(t *testing.T) {
	task := Task{ID: "abc", Name: "My Task"}
	assert.Equal(t, "My Task", task.String())
}
