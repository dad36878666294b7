package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
)

func TestEventfindaHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockEventfindaProxy(ctrl)
	events := models.EventfindaEvents{json.RawMessage(`{"id":1,"name":"Gig"}`)}

	m.EXPECT().Events(gomock.Any(), models.EventfindaQuery{Page: 1, Rows: services.EventfindaMaxRows}).Return(events, nil)
	m.EXPECT().Events(gomock.Any(), models.EventfindaQuery{Category: "music", Page: 2, Rows: 500}).Return(nil, nil)
	m.EXPECT().Events(gomock.Any(), models.EventfindaQuery{Page: 3, Rows: 10}).Return(nil, errors.New("eventfinda: unexpected status 502"))
	m.EXPECT().Categories(gomock.Any()).Return(json.RawMessage(`[{"id":7,"name":"Music"}]`), nil)

	runPlanningCases(t, []planningCase{
		{
			name: "defaults", method: http.MethodGet, target: "/eventfinda/melbourne",
			handler: NewEventfindaEventsHandler(m), expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"name":"Gig"}]`,
		},
		{
			name: "category and paging", method: http.MethodGet, target: "/eventfinda/melbourne?category=music&page=2&rows=500",
			handler: NewEventfindaEventsHandler(m), expectedCode: http.StatusOK, expectedBody: `[]`,
		},
		{
			name: "non numeric rows", method: http.MethodGet, target: "/eventfinda/melbourne?rows=many",
			handler: NewEventfindaEventsHandler(m), expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"rows must be an integer"}`,
		},
		{
			name: "non numeric page", method: http.MethodGet, target: "/eventfinda/melbourne?page=x",
			handler: NewEventfindaEventsHandler(m), expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"page must be an integer"}`,
		},
		{
			name: "upstream failure", method: http.MethodGet, target: "/eventfinda/melbourne?page=3&rows=10",
			handler: NewEventfindaEventsHandler(m), expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"eventfinda: unexpected status 502"}`,
		},
		{
			name: "categories", method: http.MethodGet, target: "/eventfinda/categories",
			handler: NewEventfindaCategoriesHandler(m), expectedCode: http.StatusOK,
			expectedBody: `[{"id":7,"name":"Music"}]`,
		},
	})
}
