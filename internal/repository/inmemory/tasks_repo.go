package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/selimyuksel/task-manager-backend/internal/apperr"
	"github.com/selimyuksel/task-manager-backend/internal/models"
)

type TasksRepo struct {
	mu    sync.RWMutex
	tasks map[string]models.Task
}

func NewTasksRepo() *TasksRepo {
	return &TasksRepo{tasks: make(map[string]models.Task)}
}

func (r *TasksRepo) Create(ctx context.Context, t models.Task) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.tasks[t.ID] = t
	return t, nil
}

func (r *TasksRepo) GetByID(ctx context.Context, id string) (models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tasks[id]; ok {
		return t, nil
	}
	return models.Task{}, apperr.New(apperr.KindNotFound, "Task not found")
}

func (r *TasksRepo) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *TasksRepo) Update(ctx context.Context, t models.Task) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return models.Task{}, apperr.New(apperr.KindNotFound, "Task not found")
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *TasksRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}

func (r *TasksRepo) DueReminders(ctx context.Context, from, to time.Time) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Task
	for _, t := range r.tasks {
		if t.Reminder == nil || t.Completed || t.ReminderSent {
			continue
		}
		if t.Reminder.After(from) && !t.Reminder.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TasksRepo) MarkReminderSent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	t.ReminderSent = true
	t.UpdatedAt = time.Now()
	r.tasks[id] = t
	return nil
}
