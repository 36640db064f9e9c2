package transport

import (
	"context"
	"errors"
	"testing"

	protovalidate "buf.build/go/protovalidate"
	"connectrpc.com/connect"

	"github.com/kursuslab/kursus/internal/core"
	kursusv1 "github.com/kursuslab/kursus/pkg/api/kursus/v1"
)

func TestValidationInterceptor_AllowsValidRequest(t *testing.T) {
	validator, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate.New() error = %v", err)
	}

	interceptor := NewValidationInterceptor(validator)
	nextCalled := false

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		nextCalled = true
		return connect.NewResponse(&kursusv1.CreateLessonResponse{}), nil
	})

	req := connect.NewRequest(&kursusv1.CreateLessonRequest{
		CourseId: "3d2cb10d-0fd7-4e06-a9e9-0b6f37bc0a0f",
		Title:    "Intro",
		Position: 1,
	})

	if _, err := unary(context.Background(), req); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called")
	}
}

func TestValidationInterceptor_InvalidRequestReturnsValidationError(t *testing.T) {
	validator, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate.New() error = %v", err)
	}

	interceptor := NewValidationInterceptor(validator)
	nextCalled := false

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		nextCalled = true
		return connect.NewResponse(&kursusv1.CreateLessonResponse{}), nil
	})

	req := connect.NewRequest(&kursusv1.CreateLessonRequest{
		CourseId: "not-a-uuid",
		Title:    "",
		Position: 0,
	})

	if _, err := unary(context.Background(), req); err == nil {
		t.Fatal("expected validation error for invalid request")
	} else if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected error to wrap core.ErrValidation, got %v", err)
	}
	if nextCalled {
		t.Fatal("expected interceptor to block invalid request before calling next")
	}
}

func TestValidationInterceptor_AllowsWhenValidatorNil(t *testing.T) {
	interceptor := NewValidationInterceptor(nil)
	nextCalled := false

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		nextCalled = true
		return connect.NewResponse(&kursusv1.CreateLessonResponse{}), nil
	})

	req := connect.NewRequest(&kursusv1.CreateLessonRequest{})

	if _, err := unary(context.Background(), req); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called when validator is nil")
	}
}
