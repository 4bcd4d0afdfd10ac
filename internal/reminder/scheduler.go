// Package reminder runs the background job that emails users when a task's
// reminder time arrives.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/selimyuksel/task-manager-backend/internal/mailer"
	"github.com/selimyuksel/task-manager-backend/internal/metrics"
	"github.com/selimyuksel/task-manager-backend/internal/models"
	repo "github.com/selimyuksel/task-manager-backend/internal/repository"
	"github.com/selimyuksel/task-manager-backend/internal/worker"
)

const dueDateLayout = "02 Jan 2006, 3:04 PM"

type Scheduler struct {
	tasks    repo.Tasks
	users    repo.Users
	mail     mailer.Mailer
	pool     *worker.Pool
	interval time.Duration
	loc      *time.Location

	// lastScan advances only when a scan query succeeds, so a delayed or
	// failed tick widens the next window instead of dropping reminders.
	lastScan time.Time

	now func() time.Time
}

func New(tasks repo.Tasks, users repo.Users, m mailer.Mailer, pool *worker.Pool, interval time.Duration, loc *time.Location) *Scheduler {
	return &Scheduler{
		tasks:    tasks,
		users:    users,
		mail:     m,
		pool:     pool,
		interval: interval,
		loc:      loc,
		now:      time.Now,
	}
}

// Run ticks until ctx is cancelled. Failures are logged and never stop the
// loop.
func (s *Scheduler) Run(ctx context.Context) {
	s.lastScan = s.now().Add(-s.interval)
	slog.Info("reminder scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Scan(ctx)
		case <-ctx.Done():
			slog.Info("reminder scheduler stopping")
			return
		}
	}
}

// Scan processes one tick: select due reminders, deliver each through the
// pool, and mark the delivered ones. Exposed for tests and for Run.
func (s *Scheduler) Scan(ctx context.Context) {
	now := s.now()
	due, err := s.tasks.DueReminders(ctx, s.lastScan, now)
	if err != nil {
		slog.Error("reminder scan", "err", err)
		return
	}
	s.lastScan = now

	if len(due) == 0 {
		return
	}
	slog.Info("reminders due", "count", len(due))

	var wg sync.WaitGroup
	for _, t := range due {
		t := t
		wg.Add(1)
		s.pool.Submit(func() {
			defer wg.Done()
			s.deliver(ctx, t)
		})
	}
	wg.Wait()
}

func (s *Scheduler) deliver(ctx context.Context, t models.Task) {
	user, err := s.users.GetByID(ctx, t.UserID)
	if err != nil || user.Email == "" {
		slog.Warn("skipping reminder, user or email missing", "task", t.ID, "title", t.Title)
		return
	}

	body := s.composeBody(user, t)
	if err := s.mail.Send(ctx, user.Email, "Task Reminder", body); err != nil {
		metrics.RemindersFailed.Inc()
		slog.Error("reminder email failed", "task", t.ID, "to", user.Email, "err", err)
		return
	}

	if err := s.tasks.MarkReminderSent(ctx, t.ID); err != nil {
		slog.Error("marking reminder sent", "task", t.ID, "err", err)
		return
	}
	metrics.RemindersSent.Inc()
	slog.Info("reminder sent", "task", t.ID, "to", user.Email)
}

func (s *Scheduler) composeBody(user models.User, t models.Task) string {
	dueAt := "N/A"
	if t.DueDate != nil {
		dueAt = t.DueDate.In(s.loc).Format(dueDateLayout)
	}
	return fmt.Sprintf(
		"Hi %s,\n\nReminder: Your task %q is due soon.\n\nDescription: %s\nDue at: %s\n\n- Task Manager",
		user.Username, t.Title, t.Description, dueAt,
	)
}
