package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimyuksel/task-manager-backend/internal/models"
)

func TestListByUserNewestFirst(t *testing.T) {
	r := NewTasksRepo()
	ctx := context.Background()

	first, err := r.Create(ctx, models.Task{UserID: "u1", Title: "first"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := r.Create(ctx, models.Task{UserID: "u1", Title: "second"})
	require.NoError(t, err)
	_, err = r.Create(ctx, models.Task{UserID: "u2", Title: "someone else"})
	require.NoError(t, err)

	got, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestDueRemindersWindow(t *testing.T) {
	r := NewTasksRepo()
	ctx := context.Background()
	now := time.Now()

	mk := func(offset time.Duration, completed, sent bool) models.Task {
		rem := now.Add(offset)
		task, err := r.Create(ctx, models.Task{UserID: "u1", Title: "t", Reminder: &rem, Completed: completed})
		require.NoError(t, err)
		if sent {
			require.NoError(t, r.MarkReminderSent(ctx, task.ID))
		}
		return task
	}

	inWindow := mk(-30*time.Second, false, false)
	mk(-2*time.Minute, false, false)    // before the window
	mk(30*time.Second, false, false)    // after the window
	mk(-30*time.Second, true, false)    // completed
	mk(-30*time.Second, false, true)    // already sent
	_, err := r.Create(ctx, models.Task{UserID: "u1", Title: "no reminder"})
	require.NoError(t, err)

	got, err := r.DueReminders(ctx, now.Add(-time.Minute), now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inWindow.ID, got[0].ID)
}

func TestDueRemindersUpperBoundInclusive(t *testing.T) {
	r := NewTasksRepo()
	ctx := context.Background()
	now := time.Now()

	rem := now
	task, err := r.Create(ctx, models.Task{UserID: "u1", Title: "t", Reminder: &rem})
	require.NoError(t, err)

	got, err := r.DueReminders(ctx, now.Add(-time.Minute), now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, task.ID, got[0].ID)

	// the same instant is excluded as the lower bound, so consecutive
	// windows never double-select a boundary reminder
	got, err = r.DueReminders(ctx, now, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, got)
}
