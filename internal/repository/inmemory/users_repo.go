// Package inmemory holds map-backed implementations of the repository
// interfaces, used by tests and by local runs without a database.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/selimyuksel/task-manager-backend/internal/apperr"
	"github.com/selimyuksel/task-manager-backend/internal/models"
)

type UsersRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{users: make(map[string]models.User)}
}

func (r *UsersRepo) Create(ctx context.Context, username, email, hash string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return models.User{}, apperr.New(apperr.KindConflict, "User already exists")
		}
	}
	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return models.User{}, apperr.New(apperr.KindNotFound, "User not found")
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperr.New(apperr.KindNotFound, "User not found")
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, apperr.New(apperr.KindNotFound, "User not found")
}
