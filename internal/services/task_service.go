package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/selimyuksel/task-manager-backend/internal/apperr"
	"github.com/selimyuksel/task-manager-backend/internal/models"
	repo "github.com/selimyuksel/task-manager-backend/internal/repository"
)

type CreateTaskInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     *time.Time      `json:"dueDate"`
	Priority    models.Priority `json:"priority"`
	Reminder    *time.Time      `json:"reminder"`
}

// TaskPatch carries a partial update. Pointer fields and OptionalTime
// distinguish "not provided" from an explicit empty or null overwrite.
type TaskPatch struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	DueDate     OptionalTime     `json:"dueDate"`
	Priority    *models.Priority `json:"priority"`
	Completed   *bool            `json:"completed"`
	Reminder    OptionalTime     `json:"reminder"`
}

type TaskService struct {
	tasks repo.Tasks
}

func NewTaskService(tasks repo.Tasks) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context, user models.User) ([]models.Task, error) {
	return s.tasks.ListByUser(ctx, user.ID)
}

func (s *TaskService) Create(ctx context.Context, user models.User, in CreateTaskInput) (models.Task, error) {
	t := models.Task{
		UserID:      user.ID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		Reminder:    in.Reminder,
	}
	if err := t.Validate(); err != nil {
		return models.Task{}, err
	}
	return s.tasks.Create(ctx, t)
}

func (s *TaskService) GetByID(ctx context.Context, user models.User, id string) (models.Task, error) {
	return s.getOwned(ctx, user, id, "access")
}

func (s *TaskService) Update(ctx context.Context, user models.User, id string, patch TaskPatch) (models.Task, error) {
	t, err := s.getOwned(ctx, user, id, "update")
	if err != nil {
		return models.Task{}, err
	}

	// title and priority only replace with a non-empty value; the other
	// fields honor explicit empty/null overwrites
	if patch.Title != nil && strings.TrimSpace(*patch.Title) != "" {
		t.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.DueDate.Set {
		t.DueDate = patch.DueDate.Value
	}
	if patch.Priority != nil && *patch.Priority != "" {
		if !patch.Priority.Valid() {
			return models.Task{}, apperr.New(apperr.KindValidation, "Invalid priority")
		}
		t.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Reminder.Set {
		// a rewritten reminder must be able to fire again
		t.Reminder = patch.Reminder.Value
		t.ReminderSent = false
	}
	t.UpdatedAt = time.Now()
	return s.tasks.Update(ctx, t)
}

func (s *TaskService) Delete(ctx context.Context, user models.User, id string) error {
	if _, err := s.getOwned(ctx, user, id, "delete"); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) ToggleCompletion(ctx context.Context, user models.User, id string) (models.Task, error) {
	t, err := s.getOwned(ctx, user, id, "modify")
	if err != nil {
		return models.Task{}, err
	}
	t.Completed = !t.Completed
	t.UpdatedAt = time.Now()
	return s.tasks.Update(ctx, t)
}

func (s *TaskService) getOwned(ctx context.Context, user models.User, id, verb string) (models.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Task{}, apperr.New(apperr.KindValidation, "Invalid task ID")
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	if t.UserID != user.ID {
		return models.Task{}, apperr.New(apperr.KindForbidden, "Not authorized to "+verb+" this task")
	}
	return t, nil
}
