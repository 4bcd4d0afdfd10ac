package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/selimyuksel/task-manager-backend/internal/api/httpx"
	"github.com/selimyuksel/task-manager-backend/internal/auth"
	"github.com/selimyuksel/task-manager-backend/internal/models"
	repo "github.com/selimyuksel/task-manager-backend/internal/repository"
)

type userKey struct{}

// UserFrom returns the authenticated user attached by Protect.
func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey{}).(models.User)
	return u, ok
}

type AuthMiddleware struct {
	tm    *auth.TokenManager
	users repo.Users
}

func NewAuthMiddleware(tm *auth.TokenManager, users repo.Users) *AuthMiddleware {
	return &AuthMiddleware{tm: tm, users: users}
}

// Protect verifies the bearer token, resolves the acting user and attaches
// it to the request context. Exactly one of the three 401 outcomes is
// produced on failure.
func (m *AuthMiddleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])
		if token == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		claims, err := m.tm.Parse(token)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "Not authorized, user not found")
			return
		}
		user.PasswordHash = ""

		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
