package store

import (
	"testing"
	"time"

	"taskroll/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTasks_PayloadShape(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{ID: "abc", Name: "Ship release", Priority: domain.PriorityHigh, Done: true, CreatedAt: created},
	}

	payload, err := encodeTasks(tasks)
	require.NoError(t, err)

	// The wire format is a JSON array of records with fixed field names
	assert.Contains(t, payload, `"id":"abc"`)
	assert.Contains(t, payload, `"name":"Ship release"`)
	assert.Contains(t, payload, `"priority":"high"`)
	assert.Contains(t, payload, `"done":true`)
	assert.Contains(t, payload, `"createdAt"`)
	assert.True(t, payload[0] == '[')
}

func TestEncodeTasks_EmptyList(t *testing.T) {
	payload, err := encodeTasks(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", payload)

	tasks, err := decodeTasks(payload)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDecodeTasks_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	original := []domain.Task{
		{ID: "a", Name: "First", Priority: domain.PriorityHigh, Done: false, CreatedAt: created},
		{ID: "b", Name: "Second", Priority: domain.PriorityMedium, Done: true, CreatedAt: created},
		{ID: "c", Name: "Third", Priority: domain.PriorityLow, Done: false, CreatedAt: created},
	}

	payload, err := encodeTasks(original)
	require.NoError(t, err)

	decoded, err := decodeTasks(payload)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeTasks_NullPayload(t *testing.T) {
	tasks, err := decodeTasks("null")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
