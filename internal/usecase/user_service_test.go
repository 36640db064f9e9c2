package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

func TestUserService_Register(t *testing.T) {
	fixedNow := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	var captured core.User
	users := &stubUserRepo{
		createFn: func(ctx context.Context, user core.User) (*core.User, error) {
			captured = user
			copy := user
			return &copy, nil
		},
	}

	service := NewUserService(users, &stubCourseRepo{}, &stubHasher{}, &stubTokenIssuer{})
	service.WithClock(func() time.Time { return fixedNow })

	got, err := service.Register(context.Background(), core.RegisterParams{
		Name:     "Ada",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "longenough",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got == nil {
		t.Fatal("Register() returned nil user")
	}
	if captured.Role != core.RoleStudent {
		t.Fatalf("expected new accounts to be students, got %v", captured.Role)
	}
	if captured.PasswordHash == "longenough" {
		t.Fatal("expected password to be hashed")
	}
	if captured.CreatedAt != fixedNow {
		t.Fatalf("expected CreatedAt %v, got %v", fixedNow, captured.CreatedAt)
	}
}

func TestUserService_RegisterRejectsShortPassword(t *testing.T) {
	service := NewUserService(&stubUserRepo{}, &stubCourseRepo{}, &stubHasher{}, &stubTokenIssuer{})

	_, err := service.Register(context.Background(), core.RegisterParams{
		Name:     "Ada",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "short",
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_RegisterRejectsTakenEmail(t *testing.T) {
	users := &stubUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*core.User, error) {
			return &core.User{ID: uuid.New(), Email: email}, nil
		},
	}
	service := NewUserService(users, &stubCourseRepo{}, &stubHasher{}, &stubTokenIssuer{})

	_, err := service.Register(context.Background(), core.RegisterParams{
		Name:     "Ada",
		Username: "ada",
		Email:    "ada@example.com",
		Password: "longenough",
	})
	if !errors.Is(err, core.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	userID := uuid.New()
	users := &stubUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*core.User, error) {
			return &core.User{ID: userID, Email: email, PasswordHash: "hash:longenough"}, nil
		},
	}
	issuer := &stubTokenIssuer{
		issueFn: func(user core.User) (core.Token, error) {
			return core.Token{AccessToken: "token-" + user.ID.String()}, nil
		},
	}

	service := NewUserService(users, &stubCourseRepo{}, &stubHasher{}, issuer)

	user, token, err := service.Login(context.Background(), "ada@example.com", "longenough")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != userID {
		t.Fatalf("unexpected user %s", user.ID)
	}
	if token.AccessToken == "" {
		t.Fatal("expected access token")
	}
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	users := &stubUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*core.User, error) {
			return &core.User{ID: uuid.New(), Email: email, PasswordHash: "hash:correct"}, nil
		},
	}
	service := NewUserService(users, &stubCourseRepo{}, &stubHasher{}, &stubTokenIssuer{})

	_, _, err := service.Login(context.Background(), "ada@example.com", "wrong")
	if !errors.Is(err, core.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	service := NewUserService(&stubUserRepo{}, &stubCourseRepo{}, &stubHasher{}, &stubTokenIssuer{})

	_, _, err := service.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, core.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_BecomeInstructor(t *testing.T) {
	userID := uuid.New()
	users := &stubUserRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.User, error) {
			return &core.User{ID: userID, Role: core.RoleStudent, PasswordHash: "hash:x"}, nil
		},
		updateFn: func(ctx context.Context, user core.User) (*core.User, error) {
			copy := user
			return &copy, nil
		},
	}
	issuer := &stubTokenIssuer{
		issueFn: func(user core.User) (core.Token, error) {
			if user.Role != core.RoleInstructor {
				t.Fatalf("token issued with role %v", user.Role)
			}
			return core.Token{AccessToken: "fresh"}, nil
		},
	}

	service := NewUserService(users, &stubCourseRepo{}, &stubHasher{}, issuer)

	user, token, err := service.BecomeInstructor(context.Background(), core.Requester{ID: userID, Role: core.RoleStudent})
	if err != nil {
		t.Fatalf("BecomeInstructor() error = %v", err)
	}
	if user.Role != core.RoleInstructor {
		t.Fatalf("expected instructor role, got %v", user.Role)
	}
	if token.AccessToken != "fresh" {
		t.Fatal("expected a fresh token carrying the new role")
	}
}

func TestUserService_BecomeInstructorTwice(t *testing.T) {
	users := &stubUserRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.User, error) {
			return &core.User{ID: id, Role: core.RoleInstructor}, nil
		},
	}
	service := NewUserService(users, &stubCourseRepo{}, &stubHasher{}, &stubTokenIssuer{})

	_, _, err := service.BecomeInstructor(context.Background(), core.Requester{ID: uuid.New(), Role: core.RoleInstructor})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_ChangePasswordVerifiesCurrent(t *testing.T) {
	userID := uuid.New()
	users := &stubUserRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.User, error) {
			return &core.User{ID: userID, PasswordHash: "hash:oldsecret"}, nil
		},
	}
	service := NewUserService(users, &stubCourseRepo{}, &stubHasher{}, &stubTokenIssuer{})

	err := service.ChangePassword(context.Background(), core.Requester{ID: userID, Role: core.RoleStudent}, "wrongsecret", "newsecret1")
	if !errors.Is(err, core.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_DeleteAccountWithOwnedCourses(t *testing.T) {
	userID := uuid.New()
	courses := &stubCourseRepo{
		countOwnedFn: func(ctx context.Context, ownerID uuid.UUID) (int, error) {
			return 2, nil
		},
	}
	service := NewUserService(&stubUserRepo{}, courses, &stubHasher{}, &stubTokenIssuer{})

	err := service.DeleteAccount(context.Background(), core.Requester{ID: userID, Role: core.RoleInstructor})
	if !errors.Is(err, core.ErrOwnsCourses) {
		t.Fatalf("expected ErrOwnsCourses, got %v", err)
	}
}

func TestUserService_DeleteAccount(t *testing.T) {
	userID := uuid.New()
	deleted := false
	users := &stubUserRepo{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			if id != userID {
				t.Fatalf("unexpected id %s", id)
			}
			deleted = true
			return nil
		},
	}
	service := NewUserService(users, &stubCourseRepo{}, &stubHasher{}, &stubTokenIssuer{})

	if err := service.DeleteAccount(context.Background(), core.Requester{ID: userID, Role: core.RoleStudent}); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}
	if !deleted {
		t.Fatal("expected repository delete to be invoked")
	}
}

type stubUserRepo struct {
	createFn        func(ctx context.Context, user core.User) (*core.User, error)
	getFn           func(ctx context.Context, id uuid.UUID) (*core.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*core.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*core.User, error)
	updateFn        func(ctx context.Context, user core.User) (*core.User, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (s *stubUserRepo) Create(ctx context.Context, user core.User) (*core.User, error) {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return &user, nil
}

func (s *stubUserRepo) Get(ctx context.Context, id uuid.UUID) (*core.User, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*core.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, core.ErrNotFound
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*core.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, core.ErrNotFound
}

func (s *stubUserRepo) Update(ctx context.Context, user core.User) (*core.User, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return &user, nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

// stubHasher prefixes instead of hashing so tests can assert on the value.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (stubHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubTokenIssuer struct {
	issueFn func(user core.User) (core.Token, error)
}

func (s *stubTokenIssuer) Issue(user core.User) (core.Token, error) {
	if s.issueFn != nil {
		return s.issueFn(user)
	}
	return core.Token{AccessToken: "token"}, nil
}
