package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=participant.go -destination=participant_mock.go -package=handlers

// ParticipantManager defines the participant directory operations.
type ParticipantManager interface {
	Search(ctx context.Context, search string) ([]models.ParticipantDB, error)
	Get(ctx context.Context, participantID int64) (*models.ParticipantDB, error)
	Create(ctx context.Context, req models.ParticipantRequest) (int64, error)
	Update(ctx context.Context, participantID int64, req models.ParticipantRequest) error
	Delete(ctx context.Context, participantID int64) error
	Categories(ctx context.Context) ([]models.ParticipantCategoryDB, error)
}

const msgParticipantNotFound = "Participant not found"

// NewSearchParticipantsHandler lists participants matching the optional search term.
// @Summary Search participants
// @Tags participant
// @Produce json
// @Param search query string false "Substring of name or description"
// @Success 200 {array} models.ParticipantDB
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /participant [get]
// @Security CookieAuth
func NewSearchParticipantsHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participants, err := svc.Search(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		if participants == nil {
			participants = []models.ParticipantDB{}
		}
		writeJSON(w, http.StatusOK, participants)
	}
}

// NewGetParticipantHandler returns a single participant.
// @Summary Get a participant
// @Tags participant
// @Produce json
// @Param participant_id path int true "Participant id"
// @Success 200 {object} models.ParticipantDB
// @Failure 400 {object} models.ErrorResponse "Invalid participant_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Participant not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /participant/{participant_id} [get]
// @Security CookieAuth
func NewGetParticipantHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participantID, ok := parseID(w, "participant_id", chi.URLParam(r, "participant_id"))
		if !ok {
			return
		}

		participant, err := svc.Get(r.Context(), participantID)
		if err != nil {
			writeServiceError(w, r, err, msgParticipantNotFound)
			return
		}
		writeJSON(w, http.StatusOK, participant)
	}
}

// NewCreateParticipantHandler adds a participant to the directory.
// @Summary Create a participant
// @Tags participant
// @Accept json
// @Produce json
// @Param participantRequest body models.ParticipantRequest true "Participant"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ErrorResponse "Missing participant_fullname"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /participant [post]
// @Security CookieAuth
func NewCreateParticipantHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ParticipantRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id, err := svc.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, models.CreatedResponse{Success: true, ID: id})
	}
}

// NewUpdateParticipantHandler overwrites a participant.
// @Summary Update a participant
// @Tags participant
// @Accept json
// @Produce json
// @Param participant_id path int true "Participant id"
// @Param participantRequest body models.ParticipantRequest true "Participant"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid participant"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Participant not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /participant/{participant_id} [put]
// @Security CookieAuth
func NewUpdateParticipantHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participantID, ok := parseID(w, "participant_id", chi.URLParam(r, "participant_id"))
		if !ok {
			return
		}

		var req models.ParticipantRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.Update(r.Context(), participantID, req); err != nil {
			writeServiceError(w, r, err, msgParticipantNotFound)
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}

// NewDeleteParticipantHandler removes a participant and its RSVP links.
// @Summary Delete a participant
// @Tags participant
// @Produce json
// @Param participant_id path int true "Participant id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid participant_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /participant/{participant_id} [delete]
// @Security CookieAuth
func NewDeleteParticipantHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participantID, ok := parseID(w, "participant_id", chi.URLParam(r, "participant_id"))
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), participantID); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}

// NewListParticipantCategoriesHandler lists the participant categories.
// @Summary List participant categories
// @Tags participant
// @Produce json
// @Success 200 {array} models.ParticipantCategoryDB
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /participant_category [get]
// @Security CookieAuth
func NewListParticipantCategoriesHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		if categories == nil {
			categories = []models.ParticipantCategoryDB{}
		}
		writeJSON(w, http.StatusOK, categories)
	}
}
