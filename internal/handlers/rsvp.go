package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=rsvp.go -destination=rsvp_mock.go -package=handlers

// RSVPManager defines the RSVP link operations used by the /event-participant handlers.
type RSVPManager interface {
	Create(ctx context.Context, userID, eventID, participantID int64, status *string) (bool, error)
	UpdateStatus(ctx context.Context, userID, eventID, participantID int64, status string) error
	List(ctx context.Context, eventID int64) ([]models.EventParticipantDB, error)
	Remove(ctx context.Context, userID, eventID, participantID int64) error
}

// NewCreateRSVPHandler links a participant to an event.
// @Summary Link a participant to an event
// @Description rsvp_status defaults to Pending. An existing link is kept and reported with created=false.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvpCreateRequest body models.RSVPCreateRequest true "Link"
// @Success 201 {object} models.RSVPCreateResponse "Link created"
// @Success 200 {object} models.RSVPCreateResponse "Link already existed"
// @Failure 400 {object} models.ErrorResponse "Invalid ids or status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /event-participant [post]
// @Security CookieAuth
func NewCreateRSVPHandler(svc RSVPManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		var req models.RSVPCreateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		created, err := svc.Create(r.Context(), userID, req.EventID, req.ParticipantID, req.RSVPStatus)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, models.RSVPCreateResponse{Success: true, Created: created})
	}
}

// NewListRSVPHandler lists the participants of an event with their RSVP status.
// @Summary List event participants
// @Tags rsvp
// @Produce json
// @Param event_id query int true "Event id"
// @Success 200 {array} models.EventParticipantDB
// @Failure 400 {object} models.ErrorResponse "Missing event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /event-participant [get]
// @Security CookieAuth
func NewListRSVPHandler(svc RSVPManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, "event_id", r.URL.Query().Get("event_id"))
		if !ok {
			return
		}

		participants, err := svc.List(r.Context(), eventID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		if participants == nil {
			participants = []models.EventParticipantDB{}
		}
		writeJSON(w, http.StatusOK, participants)
	}
}

// NewUpdateRSVPHandler sets the RSVP status of an existing link.
// @Summary Update an RSVP status
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvpUpdateRequest body models.RSVPUpdateRequest true "Status"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid ids or status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Link not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /event-participant/rsvp [put]
// @Router /participant_rsvp [put]
// @Security CookieAuth
func NewUpdateRSVPHandler(svc RSVPManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		var req models.RSVPUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.UpdateStatus(r.Context(), userID, req.EventID, req.ParticipantID, req.RSVPStatus); err != nil {
			writeServiceError(w, r, err, "Link not found")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}

// NewRemoveRSVPHandler unlinks a participant from an event. Unknown links succeed.
// @Summary Unlink a participant
// @Tags rsvp
// @Produce json
// @Param event_id query int true "Event id"
// @Param participant_id query int true "Participant id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Missing ids"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /event-participant [delete]
// @Security CookieAuth
func NewRemoveRSVPHandler(svc RSVPManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := sessionUserID(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		eventID, ok := parseID(w, "event_id", q.Get("event_id"))
		if !ok {
			return
		}
		participantID, ok := parseID(w, "participant_id", q.Get("participant_id"))
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), userID, eventID, participantID); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}
