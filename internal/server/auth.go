package server

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

const tokenIssuer = "metatravels-admin"

// AdminAuth checks the single admin account against a bcrypt hash and
// issues HS256 access tokens.
type AdminAuth struct {
	user         string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewAdminAuth(user, passwordHash, secret string, ttl time.Duration) *AdminAuth {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AdminAuth{
		user:         user,
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
	}
}

func (a *AdminAuth) Enabled() bool {
	return a != nil && a.user != "" && len(a.passwordHash) > 0 && len(a.secret) > 0
}

// Login returns a signed token and its expiry. Wrong user and wrong
// password produce the same error.
func (a *AdminAuth) Login(user, password string) (string, time.Time, error) {
	if !a.Enabled() {
		return "", time.Time{}, errors.NewServiceError("admin console is not configured", "auth", "login", nil)
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.user)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return "", time.Time{}, errors.NewAuthError("invalid credentials")
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   a.user,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, errors.NewServiceError("failed to sign token", "auth", "login", err)
	}
	return signed, expiresAt, nil
}

// Verify returns the token subject.
func (a *AdminAuth) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.NewAuthError("invalid token").WithCause(err)
	}
	if claims.Issuer != tokenIssuer || claims.Subject != a.user {
		return "", errors.NewAuthError("invalid token")
	}
	return claims.Subject, nil
}
