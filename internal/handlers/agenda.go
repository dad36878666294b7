package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=agenda.go -destination=agenda_mock.go -package=handlers

// AgendaManager defines the agenda item operations.
type AgendaManager interface {
	CreateAgenda(ctx context.Context, req models.AgendaRequest) (int64, error)
	ListAgenda(ctx context.Context, eventID int64) ([]models.AgendaDB, error)
	UpdateAgenda(ctx context.Context, agendaID int64, req models.AgendaRequest) error
	DeleteAgenda(ctx context.Context, agendaID int64) error
}

// NewCreateAgendaHandler adds an agenda item to an event.
// @Summary Create an agenda item
// @Tags agenda
// @Accept json
// @Produce json
// @Param agendaRequest body models.AgendaRequest true "Agenda item"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ErrorResponse "Missing event_id or agenda_title"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /agenda [post]
// @Security CookieAuth
func NewCreateAgendaHandler(svc AgendaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AgendaRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id, err := svc.CreateAgenda(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, models.CreatedResponse{Success: true, ID: id})
	}
}

// NewListAgendaHandler lists the agenda of an event.
// @Summary List agenda items
// @Tags agenda
// @Produce json
// @Param event_id query int true "Event id"
// @Success 200 {array} models.AgendaDB
// @Failure 400 {object} models.ErrorResponse "Missing event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /agenda [get]
// @Security CookieAuth
func NewListAgendaHandler(svc AgendaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, "event_id", r.URL.Query().Get("event_id"))
		if !ok {
			return
		}

		items, err := svc.ListAgenda(r.Context(), eventID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		if items == nil {
			items = []models.AgendaDB{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// NewUpdateAgendaHandler overwrites the agenda item named by agenda_id in the body.
// @Summary Update an agenda item
// @Tags agenda
// @Accept json
// @Produce json
// @Param agendaRequest body models.AgendaRequest true "Agenda item"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid agenda item"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Agenda item not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /agenda [put]
// @Security CookieAuth
func NewUpdateAgendaHandler(svc AgendaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AgendaRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		agendaID, ok := parseID(w, "agenda_id", strconv.FormatInt(req.AgendaID, 10))
		if !ok {
			return
		}

		if err := svc.UpdateAgenda(r.Context(), agendaID, req); err != nil {
			writeServiceError(w, r, err, "Agenda item not found")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}

// NewDeleteAgendaHandler removes an agenda item.
// @Summary Delete an agenda item
// @Tags agenda
// @Produce json
// @Param agenda_id query int true "Agenda item id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Missing agenda_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /agenda [delete]
// @Security CookieAuth
func NewDeleteAgendaHandler(svc AgendaManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agendaID, ok := parseID(w, "agenda_id", r.URL.Query().Get("agenda_id"))
		if !ok {
			return
		}

		if err := svc.DeleteAgenda(r.Context(), agendaID); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}
