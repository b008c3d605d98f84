package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ucsb-cs156/crudapi/pkg/auth/jwt"
	"github.com/ucsb-cs156/crudapi/pkg/bslog"
	"github.com/ucsb-cs156/crudapi/pkg/rest/middleware"
	"github.com/ucsb-cs156/crudapi/pkg/rest/response"
)

type contextKey string

const claimsKey = contextKey("claims")

// RequireRole only lets requests through that carry a valid bearer token
// granting role. Every failure, including a missing token, is answered with
// 403 Forbidden.
func RequireRole(authority *jwt.Authority, role jwt.Role) middleware.MiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			logger := bslog.With(slog.String("request_id", middleware.RequestID(r.Context())))

			claims, err := authenticate(authority, r)
			if err != nil {
				logger.Warn("token-validation failed", slog.String("reason", err.Error()))
				forbidden(w)
				return
			}

			if !claims.HasRole(role) {
				logger.Warn("insufficient role",
					slog.String("user", claims.Name),
					slog.String("required", string(role)),
				)
				forbidden(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		}
	}
}

// ClaimsFrom returns the claims RequireRole stored on the request context.
func ClaimsFrom(ctx context.Context) (*jwt.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.UserClaims)
	return claims, ok
}

func authenticate(authority *jwt.Authority, r *http.Request) (*jwt.UserClaims, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return nil, jwt.ErrMissingToken
	}
	return authority.Validate(token)
}

func forbidden(w http.ResponseWriter) {
	resp := jwt.Errors[jwt.ErrForbidden]
	response.JSON(w, resp.Code, resp)
}
