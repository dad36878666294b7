package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=event.go -destination=event_mock.go -package=handlers

// EventManager defines the event operations used by the /events handlers.
type EventManager interface {
	ListByUser(ctx context.Context, userID int64) ([]models.EventDB, error)
	ListAll(ctx context.Context) ([]models.EventDB, error)
	Get(ctx context.Context, userID, eventID int64) (*models.EventDB, error)
	Create(ctx context.Context, userID int64, req models.EventRequest) (*models.EventDB, error)
	Update(ctx context.Context, userID, eventID int64, req models.EventRequest) (*models.EventDB, error)
	Delete(ctx context.Context, userID, eventID int64) error
}

const msgEventNotFound = "Event not found"

func writeEvents(w http.ResponseWriter, events []models.EventDB) {
	if events == nil {
		events = []models.EventDB{}
	}
	writeJSON(w, http.StatusOK, events)
}

// NewListEventsHandler returns the caller's events.
// @Summary List own events
// @Tags events
// @Produce json
// @Success 200 {array} models.EventDB
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /events [get]
// @Security CookieAuth
func NewListEventsHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		events, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeEvents(w, events)
	}
}

// NewListAllEventsHandler returns every event.
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} models.EventDB
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /events/all [get]
// @Security CookieAuth
func NewListAllEventsHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := svc.ListAll(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeEvents(w, events)
	}
}

// NewGetEventHandler returns one of the caller's events.
// @Summary Get an event
// @Tags events
// @Produce json
// @Param event_id path int true "Event id"
// @Success 200 {object} models.EventDB
// @Failure 400 {object} models.ErrorResponse "Invalid event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Event not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /events/{event_id} [get]
// @Security CookieAuth
func NewGetEventHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}
		eventID, ok := parseID(w, "event_id", chi.URLParam(r, "event_id"))
		if !ok {
			return
		}

		event, err := svc.Get(r.Context(), userID, eventID)
		if err != nil {
			writeServiceError(w, r, err, msgEventNotFound)
			return
		}
		writeJSON(w, http.StatusOK, event)
	}
}

// NewCreateEventHandler creates an event owned by the caller.
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param eventRequest body models.EventRequest true "Event"
// @Success 201 {object} models.EventDB
// @Failure 400 {object} models.ErrorResponse "Invalid event"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /events [post]
// @Security CookieAuth
func NewCreateEventHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		var req models.EventRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		event, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			writeServiceError(w, r, err, msgEventNotFound)
			return
		}
		writeJSON(w, http.StatusCreated, event)
	}
}

// NewUpdateEventHandler overwrites one of the caller's events.
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path int true "Event id"
// @Param eventRequest body models.EventRequest true "Event"
// @Success 200 {object} models.EventDB
// @Failure 400 {object} models.ErrorResponse "Invalid event"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Event not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /events/{event_id} [put]
// @Security CookieAuth
func NewUpdateEventHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}
		eventID, ok := parseID(w, "event_id", chi.URLParam(r, "event_id"))
		if !ok {
			return
		}

		var req models.EventRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		event, err := svc.Update(r.Context(), userID, eventID, req)
		if err != nil {
			writeServiceError(w, r, err, msgEventNotFound)
			return
		}
		writeJSON(w, http.StatusOK, event)
	}
}

// NewDeleteEventHandler removes one of the caller's events.
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param event_id path int true "Event id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Event not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /events/{event_id} [delete]
// @Security CookieAuth
func NewDeleteEventHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}
		eventID, ok := parseID(w, "event_id", chi.URLParam(r, "event_id"))
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, eventID); err != nil {
			writeServiceError(w, r, err, msgEventNotFound)
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}
