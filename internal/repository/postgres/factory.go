package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	repo "github.com/selimyuksel/task-manager-backend/internal/repository"
)

type Repositories struct {
	Users repo.Users
	Tasks repo.Tasks
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users: &usersRepo{pool},
		Tasks: &tasksRepo{pool},
	}
}
