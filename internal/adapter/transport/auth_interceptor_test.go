package transport

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
	kursusv1 "github.com/kursuslab/kursus/pkg/api/kursus/v1"
)

type stubVerifier struct {
	verifyFn func(token string) (core.Requester, error)
}

func (s *stubVerifier) Verify(token string) (core.Requester, error) {
	if s.verifyFn != nil {
		return s.verifyFn(token)
	}
	return core.Requester{}, errors.New("unexpected call")
}

func TestAuthInterceptor_MissingTokenIsAnonymous(t *testing.T) {
	interceptor := NewAuthInterceptor(&stubVerifier{})

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if !RequesterFromContext(ctx).IsAnonymous() {
			t.Fatal("expected anonymous requester")
		}
		return connect.NewResponse(&kursusv1.GetCourseResponse{}), nil
	})

	req := connect.NewRequest(&kursusv1.GetCourseRequest{})
	if _, err := unary(context.Background(), req); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
}

func TestAuthInterceptor_ValidTokenAttachesRequester(t *testing.T) {
	userID := uuid.New()
	verifier := &stubVerifier{
		verifyFn: func(token string) (core.Requester, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return core.Requester{ID: userID, Role: core.RoleInstructor}, nil
		},
	}
	interceptor := NewAuthInterceptor(verifier)

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		requester := RequesterFromContext(ctx)
		if requester.ID != userID || requester.Role != core.RoleInstructor {
			t.Fatalf("unexpected requester %+v", requester)
		}
		return connect.NewResponse(&kursusv1.GetCourseResponse{}), nil
	})

	req := connect.NewRequest(&kursusv1.GetCourseRequest{})
	req.Header().Set("Authorization", "Bearer good-token")
	if _, err := unary(context.Background(), req); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
}

func TestAuthInterceptor_InvalidTokenRejected(t *testing.T) {
	verifier := &stubVerifier{
		verifyFn: func(token string) (core.Requester, error) {
			return core.Requester{}, errors.New("bad signature")
		},
	}
	interceptor := NewAuthInterceptor(verifier)

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		t.Fatal("next must not be called")
		return nil, nil
	})

	req := connect.NewRequest(&kursusv1.GetCourseRequest{})
	req.Header().Set("Authorization", "Bearer forged")
	_, err := unary(context.Background(), req)
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected CodeUnauthenticated, got %v", err)
	}
}

func TestAuthInterceptor_MalformedHeaderRejected(t *testing.T) {
	interceptor := NewAuthInterceptor(&stubVerifier{})

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		t.Fatal("next must not be called")
		return nil, nil
	})

	req := connect.NewRequest(&kursusv1.GetCourseRequest{})
	req.Header().Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err := unary(context.Background(), req)
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected CodeUnauthenticated, got %v", err)
	}
}
