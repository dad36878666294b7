package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
)

//go:generate mockgen -source=logistics.go -destination=logistics_mock.go -package=handlers

// LogisticsManager defines the logistics task operations.
type LogisticsManager interface {
	CreateLogistic(ctx context.Context, req models.LogisticRequest) (int64, error)
	ListLogistics(ctx context.Context, eventID int64) ([]models.LogisticDB, error)
	UpdateLogistic(ctx context.Context, logisticID int64, req models.LogisticRequest) error
	DeleteLogistic(ctx context.Context, logisticID int64) error
}

// NewCreateLogisticHandler adds a logistics task to an event.
// @Summary Create a logistics task
// @Description logistic_status defaults to Pending.
// @Tags logistics
// @Accept json
// @Produce json
// @Param logisticRequest body models.LogisticRequest true "Task"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ErrorResponse "Missing event_id or logistic_title"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /logistics [post]
// @Security CookieAuth
func NewCreateLogisticHandler(svc LogisticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LogisticRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id, err := svc.CreateLogistic(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusCreated, models.CreatedResponse{Success: true, ID: id})
	}
}

// NewListLogisticsHandler lists the logistics tasks of an event, newest first.
// @Summary List logistics tasks
// @Tags logistics
// @Produce json
// @Param event_id query int true "Event id"
// @Success 200 {array} models.LogisticDB
// @Failure 400 {object} models.ErrorResponse "Missing event_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /logistics [get]
// @Security CookieAuth
func NewListLogisticsHandler(svc LogisticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseID(w, "event_id", r.URL.Query().Get("event_id"))
		if !ok {
			return
		}

		items, err := svc.ListLogistics(r.Context(), eventID)
		if err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		if items == nil {
			items = []models.LogisticDB{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// NewUpdateLogisticHandler overwrites a logistics task.
// The task id comes from the {id} path segment when routed with one, else from logistic_id in the body.
// @Summary Update a logistics task
// @Tags logistics
// @Accept json
// @Produce json
// @Param id path int false "Task id"
// @Param logisticRequest body models.LogisticRequest true "Task"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid task"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Logistics task not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /logistics [put]
// @Router /logistics/{id} [put]
// @Security CookieAuth
func NewUpdateLogisticHandler(svc LogisticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LogisticRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		raw := chi.URLParam(r, "id")
		if raw == "" {
			raw = strconv.FormatInt(req.LogisticID, 10)
		}
		logisticID, ok := parseID(w, "logistic_id", raw)
		if !ok {
			return
		}

		if err := svc.UpdateLogistic(r.Context(), logisticID, req); err != nil {
			writeServiceError(w, r, err, "Logistics task not found")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}

// NewDeleteLogisticHandler removes a logistics task.
// @Summary Delete a logistics task
// @Tags logistics
// @Produce json
// @Param logistic_id query int true "Task id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Missing logistic_id"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /logistics [delete]
// @Security CookieAuth
func NewDeleteLogisticHandler(svc LogisticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logisticID, ok := parseID(w, "logistic_id", r.URL.Query().Get("logistic_id"))
		if !ok {
			return
		}

		if err := svc.DeleteLogistic(r.Context(), logisticID); err != nil {
			writeServiceError(w, r, err, "")
			return
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
	}
}
