package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/selimyuksel/task-manager-backend/internal/apperr"
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Normalize trims username and email and lowercases the email.
func (u *User) Normalize() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

func (u *User) Validate() error {
	if len(u.Username) < 3 {
		return apperr.New(apperr.KindValidation, "Username must be at least 3 characters")
	}
	if !emailPattern.MatchString(u.Email) {
		return apperr.New(apperr.KindValidation, "Please enter a valid email address")
	}
	return nil
}
