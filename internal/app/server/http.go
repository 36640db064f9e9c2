package server

import (
	"net/http"

	protovalidate "buf.build/go/protovalidate"
	"connectrpc.com/connect"

	"github.com/kursuslab/kursus/internal/adapter/auth"
	"github.com/kursuslab/kursus/internal/adapter/transport"
	"github.com/kursuslab/kursus/pkg/api/kursus/v1/kursusv1connect"
)

// NewHTTPHandler wires the Connect handlers into a ServeMux ready for serving.
func NewHTTPHandler(
	userHandler *transport.UserHandler,
	catalogHandler *transport.CatalogHandler,
	lessonHandler *transport.LessonHandler,
	enrollmentHandler *transport.EnrollmentHandler,
	tokens *auth.TokenManager,
	validator protovalidate.Validator,
) http.Handler {
	interceptors := connect.WithInterceptors(
		transport.NewAuthInterceptor(tokens),
		transport.NewValidationInterceptor(validator),
		transport.NewErrorInterceptor(),
	)

	mux := http.NewServeMux()

	path, svc := kursusv1connect.NewUserServiceHandler(userHandler, interceptors)
	mux.Handle(path, svc)

	path, svc = kursusv1connect.NewCatalogServiceHandler(catalogHandler, interceptors)
	mux.Handle(path, svc)

	path, svc = kursusv1connect.NewLessonServiceHandler(lessonHandler, interceptors)
	mux.Handle(path, svc)

	path, svc = kursusv1connect.NewEnrollmentServiceHandler(enrollmentHandler, interceptors)
	mux.Handle(path, svc)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
