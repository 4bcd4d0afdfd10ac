package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selimyuksel/task-manager-backend/internal/apperr"
	"github.com/selimyuksel/task-manager-backend/internal/auth"
	"github.com/selimyuksel/task-manager-backend/internal/repository/inmemory"
)

func newUserService(t *testing.T) (*UserService, *auth.TokenManager) {
	t.Helper()
	tm := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserService(inmemory.NewUsersRepo(), tm), tm
}

func TestRegister(t *testing.T) {
	svc, tm := newUserService(t)
	ctx := context.Background()

	payload, err := svc.Register(ctx, "alice", "Alice@Example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, payload.ID)
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, "alice@example.com", payload.Email, "email is lowercased")

	claims, err := tm.Parse(payload.Token)
	require.NoError(t, err)
	assert.Equal(t, payload.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice2", "alice@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "User already exists with this email", apperr.Message(err, ""))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "Username already taken", apperr.Message(err, ""))
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "al", "alice@example.com", "secret1")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "short username")

	_, err = svc.Register(ctx, "alice", "not-an-email", "secret1")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "bad email")

	_, err = svc.Register(ctx, "alice", "alice@example.com", "short")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "short password")
}

func TestLogin(t *testing.T) {
	svc, tm := newUserService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	payload, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, payload.ID)

	claims, err := tm.Parse(payload.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@example.com", "wrongpass")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	assert.Equal(t, "Invalid credentials", apperr.Message(err, ""))

	_, err = svc.Login(ctx, "nobody@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}
