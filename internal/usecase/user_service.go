package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

// UserService coordinates account use cases: registration, login and profile
// management.
type UserService struct {
	users   core.UserRepository
	courses core.CourseRepository
	hasher  core.PasswordHasher
	tokens  core.TokenIssuer
	now     func() time.Time
}

// NewUserService constructs a UserService backed by the provided collaborators.
func NewUserService(users core.UserRepository, courses core.CourseRepository, hasher core.PasswordHasher, tokens core.TokenIssuer) *UserService {
	return &UserService{
		users:   users,
		courses: courses,
		hasher:  hasher,
		tokens:  tokens,
		now:     time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *UserService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.UserService = (*UserService)(nil)

// Register creates a new student account. Email and username must be unique.
func (s *UserService) Register(ctx context.Context, params core.RegisterParams) (*core.User, error) {
	if strings.TrimSpace(params.Name) == "" || strings.TrimSpace(params.Username) == "" || strings.TrimSpace(params.Email) == "" {
		return nil, fmt.Errorf("%w: name, username and email required", core.ErrValidation)
	}
	if len(params.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", core.ErrValidation)
	}

	if existing, err := s.users.GetByEmail(ctx, params.Email); err == nil && existing != nil {
		return nil, core.ErrEmailTaken
	}
	if existing, err := s.users.GetByUsername(ctx, params.Username); err == nil && existing != nil {
		return nil, core.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := core.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         core.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.users.Create(ctx, user)
}

// Login verifies credentials and issues an access token.
func (s *UserService) Login(ctx context.Context, email, password string) (*core.User, core.Token, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, core.Token{}, core.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, core.Token{}, core.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, core.Token{}, err
	}
	return user, token, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*core.User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: user id required", core.ErrValidation)
	}
	return s.users.Get(ctx, id)
}

// UpdateProfile applies partial profile updates for the requester.
func (s *UserService) UpdateProfile(ctx context.Context, requester core.Requester, params core.UpdateUserParams) (*core.User, error) {
	if requester.IsAnonymous() {
		return nil, fmt.Errorf("%w: sign in to update your profile", core.ErrNotAuthorized)
	}

	user, err := s.users.Get(ctx, requester.ID)
	if err != nil {
		return nil, err
	}

	if params.Email != nil && *params.Email != user.Email {
		if existing, err := s.users.GetByEmail(ctx, *params.Email); err == nil && existing != nil {
			return nil, core.ErrEmailTaken
		}
		user.Email = *params.Email
	}
	if params.Username != nil && *params.Username != user.Username {
		if existing, err := s.users.GetByUsername(ctx, *params.Username); err == nil && existing != nil {
			return nil, core.ErrUsernameTaken
		}
		user.Username = *params.Username
	}
	if params.Name != nil {
		user.Name = *params.Name
	}

	user.UpdatedAt = s.now().UTC()
	return s.users.Update(ctx, *user)
}

// ChangePassword replaces the requester's password after verifying the
// current one.
func (s *UserService) ChangePassword(ctx context.Context, requester core.Requester, current, next string) error {
	if requester.IsAnonymous() {
		return fmt.Errorf("%w: sign in to change your password", core.ErrNotAuthorized)
	}
	if len(next) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", core.ErrValidation)
	}

	user, err := s.users.Get(ctx, requester.ID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(user.PasswordHash, current); err != nil {
		return core.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = s.now().UTC()
	_, err = s.users.Update(ctx, *user)
	return err
}

// BecomeInstructor upgrades a student to the instructor role and issues a
// fresh token carrying the new role.
func (s *UserService) BecomeInstructor(ctx context.Context, requester core.Requester) (*core.User, core.Token, error) {
	if requester.IsAnonymous() {
		return nil, core.Token{}, fmt.Errorf("%w: sign in first", core.ErrNotAuthorized)
	}

	user, err := s.users.Get(ctx, requester.ID)
	if err != nil {
		return nil, core.Token{}, err
	}
	if user.Role == core.RoleInstructor {
		return nil, core.Token{}, fmt.Errorf("%w: already an instructor", core.ErrValidation)
	}

	user.Role = core.RoleInstructor
	user.UpdatedAt = s.now().UTC()
	updated, err := s.users.Update(ctx, *user)
	if err != nil {
		return nil, core.Token{}, err
	}

	token, err := s.tokens.Issue(*updated)
	if err != nil {
		return nil, core.Token{}, err
	}
	return updated, token, nil
}

// DeleteAccount removes the requester's account. A user who still owns
// courses cannot be deleted; the courses must be deleted or the request is
// rejected, so no course is ever left without an owner.
func (s *UserService) DeleteAccount(ctx context.Context, requester core.Requester) error {
	if requester.IsAnonymous() {
		return fmt.Errorf("%w: sign in first", core.ErrNotAuthorized)
	}

	owned, err := s.courses.CountOwnedBy(ctx, requester.ID)
	if err != nil {
		return err
	}
	if owned > 0 {
		return core.ErrOwnsCourses
	}
	return s.users.Delete(ctx, requester.ID)
}
