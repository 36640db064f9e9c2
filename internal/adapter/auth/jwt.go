package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

const (
	roleClaimStudent    = "student"
	roleClaimInstructor = "instructor"
)

// TokenManager signs and verifies HS256 access tokens that carry the user id
// and role.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager constructs a TokenManager with the given signing secret and
// token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock allows tests to override the clock used for issuance and expiry.
func (m *TokenManager) WithClock(fn func() time.Time) {
	if fn != nil {
		m.now = fn
	}
}

var (
	_ core.TokenIssuer   = (*TokenManager)(nil)
	_ core.TokenVerifier = (*TokenManager)(nil)
)

// Issue signs an access token for the user.
func (m *TokenManager) Issue(user core.User) (core.Token, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": roleClaim(user.Role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return core.Token{}, err
	}
	return core.Token{AccessToken: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses a bearer token and resolves the requester it was issued for.
func (m *TokenManager) Verify(tokenStr string) (core.Requester, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return core.Requester{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return core.Requester{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return core.Requester{}, errors.New("missing subject claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return core.Requester{}, err
	}
	role, _ := claims["role"].(string)

	return core.Requester{ID: id, Role: parseRoleClaim(role)}, nil
}

func roleClaim(role core.Role) string {
	if role == core.RoleInstructor {
		return roleClaimInstructor
	}
	return roleClaimStudent
}

func parseRoleClaim(claim string) core.Role {
	if claim == roleClaimInstructor {
		return core.RoleInstructor
	}
	return core.RoleStudent
}
