package services

import (
	"context"

	"github.com/selimyuksel/task-manager-backend/internal/apperr"
	"github.com/selimyuksel/task-manager-backend/internal/auth"
	"github.com/selimyuksel/task-manager-backend/internal/models"
	repo "github.com/selimyuksel/task-manager-backend/internal/repository"
)

// AuthPayload is the public response for both register and login.
type AuthPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

type UserService struct {
	users repo.Users
	tm    *auth.TokenManager
}

func NewUserService(users repo.Users, tm *auth.TokenManager) *UserService {
	return &UserService{users: users, tm: tm}
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (AuthPayload, error) {
	u := models.User{Username: username, Email: email}
	u.Normalize()
	if err := u.Validate(); err != nil {
		return AuthPayload{}, err
	}
	if len(password) < 6 {
		return AuthPayload{}, apperr.New(apperr.KindValidation, "Password must be at least 6 characters")
	}

	// email checked before username, so the conflict message is stable
	if _, err := s.users.GetByEmail(ctx, u.Email); err == nil {
		return AuthPayload{}, apperr.New(apperr.KindConflict, "User already exists with this email")
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		return AuthPayload{}, err
	}
	if _, err := s.users.GetByUsername(ctx, u.Username); err == nil {
		return AuthPayload{}, apperr.New(apperr.KindConflict, "Username already taken")
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		return AuthPayload{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return AuthPayload{}, err
	}
	created, err := s.users.Create(ctx, u.Username, u.Email, hash)
	if err != nil {
		return AuthPayload{}, err
	}
	return s.payload(created)
}

func (s *UserService) Login(ctx context.Context, email, password string) (AuthPayload, error) {
	u := models.User{Email: email}
	u.Normalize()
	found, err := s.users.GetByEmail(ctx, u.Email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return AuthPayload{}, apperr.New(apperr.KindUnauthorized, "Invalid credentials")
		}
		return AuthPayload{}, err
	}
	if err := auth.VerifyPassword(password, found.PasswordHash); err != nil {
		return AuthPayload{}, apperr.New(apperr.KindUnauthorized, "Invalid credentials")
	}
	return s.payload(found)
}

func (s *UserService) payload(u models.User) (AuthPayload, error) {
	token, err := s.tm.Generate(u.ID)
	if err != nil {
		return AuthPayload{}, err
	}
	return AuthPayload{ID: u.ID, Username: u.Username, Email: u.Email, Token: token}, nil
}
