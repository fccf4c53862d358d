// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package middleware

import (
	"net/http"
	"strings"

	"github.com/planora/api/internal/platform/constants"
	"github.com/planora/api/internal/platform/ctxutil"
	"github.com/planora/api/internal/platform/sec"
)

// TokenVerifier validates a bearer token and returns its claims.
//
// It is satisfied by [*sec.TokenVerifier]; the indirection keeps the
// middleware testable without a real signing secret.
type TokenVerifier interface {
	VerifyToken(token string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the Authorization bearer token, if any.
//
// A missing or invalid token does NOT reject the request here — the claims
// are simply absent from the context. Per-route guards such as [RequireUser]
// decide whether authentication is mandatory. A nil verifier disables
// authentication entirely (development / demo mode).
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if verifier == nil {
				next.ServeHTTP(writer, request)
				return
			}

			header := request.Header.Get(constants.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				// A present-but-invalid token is rejected outright so that
				// clients notice expired credentials instead of silently
				// degrading to anonymous access.
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireUser rejects unauthenticated requests on mutating routes.
//
// When authentication is disabled (no JWT secret configured) every request
// passes; the gate only activates once a verifier is wired in.
func RequireUser(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if enabled && ctxutil.GetAuthUser(request.Context()) == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
