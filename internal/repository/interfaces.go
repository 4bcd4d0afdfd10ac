package repository

import (
	"context"
	"time"

	"github.com/selimyuksel/task-manager-backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

type Tasks interface {
	Create(ctx context.Context, t models.Task) (models.Task, error)
	GetByID(ctx context.Context, id string) (models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	Update(ctx context.Context, t models.Task) (models.Task, error)
	Delete(ctx context.Context, id string) error

	// DueReminders returns tasks whose reminder falls in (from, to], that
	// are not completed and whose reminder has not been delivered yet.
	DueReminders(ctx context.Context, from, to time.Time) ([]models.Task, error)
	MarkReminderSent(ctx context.Context, id string) error
}
