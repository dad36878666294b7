package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/jwt"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=handlers

// Identifier returns the user behind a session.
type Identifier interface {
	Me(ctx context.Context, userID int64) (*models.UserDB, error)
}

// NewLogoutHandler returns an HTTP handler that clears the session cookies.
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} models.OKResponse "Signed out"
// @Router /logout [post]
func NewLogoutHandler(cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jwt.ClearSessionCookies(w, cookies.Secure)
		writeJSON(w, http.StatusOK, models.OKResponse{OK: true})
	}
}

// NewMeHandler returns an HTTP handler describing the caller's session.
// Requests without a valid session get a JSON null.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.MeResponse "Session user, or null"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /me [get]
func NewMeHandler(svc Identifier, tokener middlewares.Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := middlewares.ResolveUserID(ctx, tokener, r)
		if err != nil {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		user, err := svc.Me(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				writeJSON(w, http.StatusOK, nil)
				return
			}
			logger.Log.Errorw("failed to resolve session user", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}

		writeJSON(w, http.StatusOK, models.MeResponse{ID: user.UserID, Email: user.Email})
	}
}
