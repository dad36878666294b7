package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
)

//go:generate mockgen -source=eventfinda.go -destination=eventfinda_mock.go -package=handlers

// EventfindaProxy defines the Eventfinda listing operations.
type EventfindaProxy interface {
	Events(ctx context.Context, q models.EventfindaQuery) (models.EventfindaEvents, error)
	Categories(ctx context.Context) (json.RawMessage, error)
}

// queryInt reads an optional integer query parameter, def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// NewEventfindaEventsHandler returns one page of Eventfinda events for the configured location.
// @Summary List Eventfinda events
// @Description page is at least 1; rows is clamped to 1..100.
// @Tags eventfinda
// @Produce json
// @Param category query string false "Eventfinda category id"
// @Param page query int false "Page, default 1"
// @Param rows query int false "Rows per page, default 100"
// @Success 200 {array} object "Eventfinda events"
// @Failure 400 {object} models.ErrorResponse "Non-numeric page or rows"
// @Failure 500 {object} models.ErrorResponse "Upstream failure"
// @Router /eventfinda/melbourne [get]
func NewEventfindaEventsHandler(svc EventfindaProxy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := queryInt(r, "page", 1)
		if err != nil {
			writeError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		rows, err := queryInt(r, "rows", services.EventfindaMaxRows)
		if err != nil {
			writeError(w, http.StatusBadRequest, "rows must be an integer")
			return
		}

		events, err := svc.Events(r.Context(), models.EventfindaQuery{
			Category: r.URL.Query().Get("category"),
			Page:     page,
			Rows:     rows,
		})
		if err != nil {
			logger.Log.Errorw("eventfinda events request failed", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if events == nil {
			events = models.EventfindaEvents{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}

// NewEventfindaCategoriesHandler returns the Eventfinda category list.
// @Summary List Eventfinda categories
// @Tags eventfinda
// @Produce json
// @Success 200 {array} object "Eventfinda categories"
// @Failure 500 {object} models.ErrorResponse "Upstream failure"
// @Router /eventfinda/categories [get]
func NewEventfindaCategoriesHandler(svc EventfindaProxy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			logger.Log.Errorw("eventfinda categories request failed", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}
