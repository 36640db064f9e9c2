package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role tags a user as a student or an instructor.
type Role int

const (
	RoleUnspecified Role = iota
	RoleStudent
	RoleInstructor
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Requester identifies the authenticated caller of an operation. The zero
// value represents an anonymous caller.
type Requester struct {
	ID   uuid.UUID
	Role Role
}

// IsAnonymous reports whether the requester carries no identity.
func (r Requester) IsAnonymous() bool {
	return r.ID == uuid.Nil
}

// RegisterParams holds the input required to register a new user.
type RegisterParams struct {
	Name     string
	Username string
	Email    string
	Password string
}

// UpdateUserParams holds optional profile updates; nil fields are left unchanged.
type UpdateUserParams struct {
	Name     *string
	Username *string
	Email    *string
}

// Token is an issued access credential.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(user User) (Token, error)
}

// TokenVerifier resolves a bearer token back to the requester it was issued for.
type TokenVerifier interface {
	Verify(token string) (Requester, error)
}

// PasswordHasher abstracts credential hashing and comparison.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user User) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService exposes account use cases to the transport layer.
type UserService interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, email, password string) (*User, Token, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, requester Requester, params UpdateUserParams) (*User, error)
	ChangePassword(ctx context.Context, requester Requester, current, next string) error
	BecomeInstructor(ctx context.Context, requester Requester) (*User, Token, error)
	DeleteAccount(ctx context.Context, requester Requester) error
}
