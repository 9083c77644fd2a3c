package dto

import (
	"time"

	"authd/app/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountView is the public projection of an account. It never carries
// the password hash.
type AccountView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAccountView(a *models.Account) AccountView {
	return AccountView{ID: a.ID, Username: a.Username, Role: a.Role, CreatedAt: a.CreatedAt}
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Account     *AccountView `json:"account,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
