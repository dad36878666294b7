package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=saved_event.go -destination=saved_event_mock.go -package=handlers

// SavedEventManager defines the bookmark operations used by the /saved-events handlers.
type SavedEventManager interface {
	List(ctx context.Context, userID int64) ([]models.SavedEventDB, error)
	Save(ctx context.Context, userID int64, req models.SaveEventRequest) error
	Unsave(ctx context.Context, userID, eventID int64) (int64, error)
}

// NewListSavedEventsHandler returns the caller's bookmarks.
// @Summary List saved events
// @Description Favourites first, then by start time.
// @Tags saved-events
// @Produce json
// @Success 200 {array} models.SavedEventDB
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /saved-events [get]
// @Security CookieAuth
func NewListSavedEventsHandler(svc SavedEventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		events, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		if events == nil {
			events = []models.SavedEventDB{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}

// NewSaveEventHandler bookmarks an event. The first saved snapshot is kept.
// @Summary Save an event
// @Tags saved-events
// @Accept json
// @Produce json
// @Param saveEventRequest body models.SaveEventRequest true "Event snapshot"
// @Success 201 {object} models.OKResponse
// @Failure 400 {object} models.ErrorResponse "Missing event_id, event_name or event_url"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /saved-events [post]
// @Security CookieAuth
func NewSaveEventHandler(svc SavedEventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		var req models.SaveEventRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.Save(r.Context(), userID, req); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, models.OKResponse{OK: true})
	}
}

// NewUnsaveEventHandler removes a bookmark.
// @Summary Unsave an event
// @Tags saved-events
// @Produce json
// @Param event_id query int true "Event id"
// @Success 200 {object} models.DeletedResponse
// @Failure 400 {object} models.ErrorResponse "Missing event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /saved-events [delete]
// @Security CookieAuth
func NewUnsaveEventHandler(svc SavedEventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		eventID, ok := parseID(w, "event_id", r.URL.Query().Get("event_id"))
		if !ok {
			return
		}

		deleted, err := svc.Unsave(r.Context(), userID, eventID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, models.DeletedResponse{Deleted: deleted})
	}
}
