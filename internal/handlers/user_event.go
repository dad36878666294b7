package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=user_event.go -destination=user_event_mock.go -package=handlers

// FavoriteManager defines the favourite-link operations used by the /user-event handlers.
type FavoriteManager interface {
	ListFavorites(ctx context.Context, userID int64) ([]models.FavoriteEventDB, error)
	ToggleFavorite(ctx context.Context, userID, eventID int64, favorite bool) error
	SetFavorite(ctx context.Context, userID, eventID int64, favorite bool) error
	Unlink(ctx context.Context, userID, eventID int64) (int64, error)
}

// NewListUserEventsHandler returns the caller's linked events.
// @Summary List linked events
// @Tags user-event
// @Produce json
// @Success 200 {array} models.FavoriteEventDB
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user-event [get]
// @Security CookieAuth
func NewListUserEventsHandler(svc FavoriteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		events, err := svc.ListFavorites(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		if events == nil {
			events = []models.FavoriteEventDB{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}

// NewLinkUserEventHandler creates a favourite link or overwrites its flag.
// @Summary Link or favourite an event
// @Description favorite defaults to false; the last write wins.
// @Tags user-event
// @Accept json
// @Produce json
// @Param userEventRequest body models.UserEventRequest true "Link"
// @Success 201 {object} models.OKResponse
// @Failure 400 {object} models.ErrorResponse "Missing event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user-event [post]
// @Security CookieAuth
func NewLinkUserEventHandler(svc FavoriteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		var req models.UserEventRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		favorite := req.Favorite != nil && *req.Favorite
		if err := svc.ToggleFavorite(r.Context(), userID, req.EventID, favorite); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, models.OKResponse{OK: true})
	}
}

// NewUpdateUserEventHandler changes the favourite flag of an existing link.
// @Summary Update a favourite flag
// @Tags user-event
// @Accept json
// @Produce json
// @Param userEventRequest body models.UserEventRequest true "Link"
// @Success 200 {object} models.OKResponse
// @Failure 400 {object} models.ErrorResponse "Missing event_id or favorite"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Link not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user-event [patch]
// @Security CookieAuth
func NewUpdateUserEventHandler(svc FavoriteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		var req models.UserEventRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Favorite == nil {
			writeError(w, http.StatusBadRequest, "favorite is required")
			return
		}

		if err := svc.SetFavorite(r.Context(), userID, req.EventID, *req.Favorite); err != nil {
			writeServiceError(w, r, err, "Link not found")
			return
		}
		writeJSON(w, http.StatusOK, models.OKResponse{OK: true})
	}
}

// NewUnlinkUserEventHandler removes a favourite link.
// @Summary Unlink an event
// @Tags user-event
// @Produce json
// @Param event_id query int true "Event id"
// @Success 200 {object} models.DeletedResponse
// @Failure 400 {object} models.ErrorResponse "Missing event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /user-event [delete]
// @Security CookieAuth
func NewUnlinkUserEventHandler(svc FavoriteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		eventID, ok := parseID(w, "event_id", r.URL.Query().Get("event_id"))
		if !ok {
			return
		}

		deleted, err := svc.Unlink(r.Context(), userID, eventID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, models.DeletedResponse{Deleted: deleted})
	}
}
