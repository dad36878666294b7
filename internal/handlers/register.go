package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-event-planner/internal/jwt"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) (token string, userID int64, err error)
}

// SessionCookies configures the session cookies written on register and login.
type SessionCookies struct {
	MaxAge time.Duration
	Secure bool
}

func (c SessionCookies) set(w http.ResponseWriter, token string, userID int64) {
	maxAge := c.MaxAge
	if maxAge <= 0 {
		maxAge = jwt.DefaultExpiration
	}
	jwt.SetSessionCookies(w, token, userID, maxAge, c.Secure)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account and signs it in by setting the session cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.OKResponse "User registered and signed in"
// @Failure 400 {object} models.ErrorResponse "Missing email or password"
// @Failure 409 {object} models.ErrorResponse "Email already in use"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, cookies SessionCookies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, userID, err := svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Email already in use")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
			return
		}

		cookies.set(w, token, userID)
		writeJSON(w, http.StatusCreated, models.OKResponse{OK: true})
	}
}
