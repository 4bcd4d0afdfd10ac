package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/selimyuksel/task-manager-backend/internal/apperr"
	"github.com/selimyuksel/task-manager-backend/internal/models"
)

type tasksRepo struct{ pool *pgxpool.Pool }

const taskCols = `id, user_id, title, description, due_date, priority, completed, reminder, reminder_sent, created_at, updated_at`

func scanTask(row pgx.Row) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate, &t.Priority,
		&t.Completed, &t.Reminder, &t.ReminderSent, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *tasksRepo) Create(ctx context.Context, t models.Task) (models.Task, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return scanTask(r.pool.QueryRow(ctx,
		`INSERT INTO tasks(id, user_id, title, description, due_date, priority, completed, reminder)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING `+taskCols,
		t.ID, t.UserID, t.Title, t.Description, t.DueDate, t.Priority, t.Completed, t.Reminder,
	))
}

func (r *tasksRepo) GetByID(ctx context.Context, id string) (models.Task, error) {
	t, err := scanTask(r.pool.QueryRow(ctx, `SELECT `+taskCols+` FROM tasks WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, apperr.New(apperr.KindNotFound, "Task not found")
	}
	return t, err
}

func (r *tasksRepo) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+taskCols+` FROM tasks WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *tasksRepo) Update(ctx context.Context, t models.Task) (models.Task, error) {
	out, err := scanTask(r.pool.QueryRow(ctx,
		`UPDATE tasks
		    SET title=$2, description=$3, due_date=$4, priority=$5,
		        completed=$6, reminder=$7, reminder_sent=$8, updated_at=now()
		  WHERE id=$1
		  RETURNING `+taskCols,
		t.ID, t.Title, t.Description, t.DueDate, t.Priority, t.Completed, t.Reminder, t.ReminderSent,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Task{}, apperr.New(apperr.KindNotFound, "Task not found")
	}
	return out, err
}

func (r *tasksRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id=$1`, id)
	return err
}

func (r *tasksRepo) DueReminders(ctx context.Context, from, to time.Time) ([]models.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+taskCols+` FROM tasks
		  WHERE reminder > $1 AND reminder <= $2
		    AND completed = false AND reminder_sent = false`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *tasksRepo) MarkReminderSent(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE tasks SET reminder_sent = true, updated_at = now() WHERE id=$1`, id)
	return err
}

func collectTasks(rows pgx.Rows) ([]models.Task, error) {
	var out []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
