package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/jwt"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed to resolve a session.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type userIDKey struct{}

// ResolveUserID returns the user behind the request's session token.
// A user_id cookie, when sent, must agree with the token subject.
func ResolveUserID(ctx context.Context, tokener Tokener, r *http.Request) (int64, error) {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return 0, err
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return 0, err
	}

	if err := jwt.CheckUserIDCookie(r, claims.UserID); err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// AuthMiddleware rejects requests without a valid session and stores the user id in the context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, err := ResolveUserID(ctx, tokener, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "uri", r.RequestURI, "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

// WithUserID returns a copy of ctx carrying the session user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext returns the user id stored by AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
