package transport

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"

	"github.com/kursuslab/kursus/internal/core"
)

type requesterContextKey struct{}

// RequesterFromContext returns the requester attached by the auth
// interceptor. Requests without credentials carry the anonymous requester.
func RequesterFromContext(ctx context.Context) core.Requester {
	if requester, ok := ctx.Value(requesterContextKey{}).(core.Requester); ok {
		return requester
	}
	return core.Requester{}
}

// NewAuthInterceptor resolves the bearer token on incoming requests into a
// requester. A missing token leaves the caller anonymous; an invalid token is
// rejected outright.
func NewAuthInterceptor(verifier core.TokenVerifier) connect.Interceptor {
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			header := req.Header().Get("Authorization")
			if header == "" {
				return next(ctx, req)
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("malformed authorization header"))
			}

			requester, err := verifier.Verify(token)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid or expired token"))
			}

			return next(context.WithValue(ctx, requesterContextKey{}, requester), req)
		}
	})
}
