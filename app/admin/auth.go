package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/leathstore/catalog-api/app/api"
	"github.com/leathstore/catalog-api/config"
)

// ErrInvalidCredentials is returned for any login failure; callers must not
// learn whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator issues and verifies bearer tokens for the single operator
// account configured through the environment.
type Authenticator struct {
	secret       []byte
	ttl          time.Duration
	username     string
	passwordHash string
}

func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{
		secret:       []byte(cfg.JWTSecret),
		ttl:          cfg.TokenTTL,
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
	}
}

func (a *Authenticator) Login(username, password string) (string, error) {
	if username != a.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenUnverifiable
	}
	return nil
}

// Middleware rejects requests that do not carry a valid bearer token.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			api.WriteError(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			api.WriteError(w, http.StatusUnauthorized, "invalid token format")
			return
		}

		if err := a.Verify(token); err != nil {
			api.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
