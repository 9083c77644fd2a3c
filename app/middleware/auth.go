package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"authd/app/dto"
	jwtutil "authd/app/jwt"
	"authd/app/policy"

	"github.com/rs/zerolog"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Log    zerolog.Logger
}

// RequireAuth admits only requests carrying a verifiable bearer token.
// A missing or malformed Authorization header is 401; a present token
// that fails verification (expired, bad signature, garbage) is 403.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, status, msg := a.authenticate(r)
		if claims == nil {
			writeDenied(w, status, msg)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePolicy authenticates like RequireAuth and then applies p to the
// verified claims. Policy denial is 403 with a body distinct from the
// token-rejection one.
func (a *Auth) RequirePolicy(p policy.Policy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, status, msg := a.authenticate(r)
		if claims == nil {
			writeDenied(w, status, msg)
			return
		}
		if !p(claims) {
			writeDenied(w, http.StatusForbidden, "insufficient role")
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) authenticate(r *http.Request) (*jwtutil.Claims, int, string) {
	authz := r.Header.Get("Authorization")
	if authz == "" {
		return nil, http.StatusUnauthorized, "authentication required"
	}
	parts := strings.Fields(authz)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, http.StatusUnauthorized, "authentication required"
	}
	claims, err := a.Signer.Verify(parts[1])
	if err != nil {
		if errors.Is(err, jwtutil.ErrExpired) {
			a.Log.Debug().Str("path", r.URL.Path).Msg("expired token rejected")
		} else {
			a.Log.Debug().Str("path", r.URL.Path).Err(err).Msg("token rejected")
		}
		return nil, http.StatusForbidden, "access denied"
	}
	return claims, 0, ""
}

func writeDenied(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: msg})
}
