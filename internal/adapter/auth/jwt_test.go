package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	user := core.User{ID: uuid.New(), Role: core.RoleInstructor}
	token, err := manager.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token.AccessToken == "" {
		t.Fatal("expected a signed token")
	}

	requester, err := manager.Verify(token.AccessToken)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if requester.ID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, requester.ID)
	}
	if requester.Role != core.RoleInstructor {
		t.Fatalf("expected instructor role, got %v", requester.Role)
	}
}

func TestTokenManagerRejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	issuedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	manager.WithClock(func() time.Time { return issuedAt })

	token, err := manager.Issue(core.User{ID: uuid.New(), Role: core.RoleStudent})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	manager.WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) })
	if _, err := manager.Verify(token.AccessToken); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTokenManagerRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(core.User{ID: uuid.New(), Role: core.RoleStudent})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := verifier.Verify(token.AccessToken); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("correct horse battery")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("expected hash to differ from the password")
	}
	if err := hasher.Compare(hash, "correct horse battery"); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch to be rejected")
	}
}
