package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskPatchPresence(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"completed":true}`), &patch))
	assert.False(t, patch.DueDate.Set)
	assert.False(t, patch.Reminder.Set)
	assert.Nil(t, patch.Title)
	require.NotNil(t, patch.Completed)
	assert.True(t, *patch.Completed)
}

func TestTaskPatchExplicitNullClears(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null,"description":""}`), &patch))
	assert.True(t, patch.DueDate.Set)
	assert.Nil(t, patch.DueDate.Value)
	require.NotNil(t, patch.Description)
	assert.Empty(t, *patch.Description)
}

func TestTaskPatchTimestampValue(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"reminder":"2025-07-05T16:20:00Z"}`), &patch))
	require.True(t, patch.Reminder.Set)
	require.NotNil(t, patch.Reminder.Value)
	assert.Equal(t, time.Date(2025, 7, 5, 16, 20, 0, 0, time.UTC), patch.Reminder.Value.UTC())
}
