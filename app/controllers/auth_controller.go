package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"authd/app/dto"
	jwtutil "authd/app/jwt"
	"authd/app/middleware"
	"authd/app/services"
)

type AuthController struct {
	Accounts *services.AccountService
	Signer   *jwtutil.Signer
}

func NewAuthController(accounts *services.AccountService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Accounts: accounts, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	a, err := c.Accounts.Register(req.Username, req.Password, "")
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrUsernameTooShort),
		errors.Is(err, services.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
		return
	default:
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewAccountView(a))
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	a, err := c.Accounts.Login(req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingFields):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	default:
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	token, exp, err := c.Signer.Issue(a.ID, a.Username, a.Role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token error")
		return
	}
	view := dto.NewAccountView(a)
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, ExpiresAt: exp, Account: &view})
}

// Refresh is only reachable behind the auth guard, so the claims in the
// context are already verified and no password check is needed.
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	token, exp, err := c.Signer.Refresh(claims)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token error")
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, ExpiresAt: exp})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	a, err := c.Accounts.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewAccountView(a))
}
