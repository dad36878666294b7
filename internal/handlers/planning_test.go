package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/stretchr/testify/assert"
)

type planningCase struct {
	name         string
	method       string
	target       string
	params       []string
	body         any
	handler      http.HandlerFunc
	expectedCode int
	expectedBody string
}

func runPlanningCases(t *testing.T, tests []planningCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t, tt.method, tt.target, tt.body)
			if tt.params != nil {
				req = withURLParams(req, tt.params...)
			}
			rr := httptest.NewRecorder()
			tt.handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestLogisticsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockLogisticsManager(ctrl)
	task := models.LogisticRequest{EventID: 1, Title: "Book van"}

	m.EXPECT().CreateLogistic(gomock.Any(), task).Return(int64(3), nil)
	m.EXPECT().ListLogistics(gomock.Any(), int64(1)).Return(nil, nil)
	m.EXPECT().UpdateLogistic(gomock.Any(), int64(3), gomock.Any()).Return(nil)
	m.EXPECT().UpdateLogistic(gomock.Any(), int64(4), gomock.Any()).Return(nil)
	m.EXPECT().UpdateLogistic(gomock.Any(), int64(99), gomock.Any()).Return(services.ErrNotFound)
	m.EXPECT().DeleteLogistic(gomock.Any(), int64(3)).Return(nil)

	runPlanningCases(t, []planningCase{
		{
			name: "create", method: http.MethodPost, target: "/logistics", body: task,
			handler: NewCreateLogisticHandler(m), expectedCode: http.StatusCreated,
			expectedBody: `{"success":true,"id":3}`,
		},
		{
			name: "list empty", method: http.MethodGet, target: "/logistics?event_id=1",
			handler: NewListLogisticsHandler(m), expectedCode: http.StatusOK, expectedBody: `[]`,
		},
		{
			name: "list without event", method: http.MethodGet, target: "/logistics",
			handler: NewListLogisticsHandler(m), expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"event_id must be a positive integer"}`,
		},
		{
			name: "update by body id", method: http.MethodPut, target: "/logistics",
			body:    models.LogisticRequest{LogisticID: 3, EventID: 1, Title: "Van"},
			handler: NewUpdateLogisticHandler(m), expectedCode: http.StatusOK, expectedBody: `{"success":true}`,
		},
		{
			name: "update by path id", method: http.MethodPut, target: "/logistics/4", params: []string{"id", "4"},
			body:    models.LogisticRequest{LogisticID: 3, EventID: 1, Title: "Van"},
			handler: NewUpdateLogisticHandler(m), expectedCode: http.StatusOK, expectedBody: `{"success":true}`,
		},
		{
			name: "update missing task", method: http.MethodPut, target: "/logistics",
			body:    models.LogisticRequest{LogisticID: 99, EventID: 1, Title: "Van"},
			handler: NewUpdateLogisticHandler(m), expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Logistics task not found"}`,
		},
		{
			name: "update without id", method: http.MethodPut, target: "/logistics",
			body:    models.LogisticRequest{EventID: 1, Title: "Van"},
			handler: NewUpdateLogisticHandler(m), expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"logistic_id must be a positive integer"}`,
		},
		{
			name: "delete", method: http.MethodDelete, target: "/logistics?logistic_id=3",
			handler: NewDeleteLogisticHandler(m), expectedCode: http.StatusOK, expectedBody: `{"success":true}`,
		},
	})
}

func TestAgendaHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockAgendaManager(ctrl)
	item := models.AgendaRequest{EventID: 2, Title: "Keynote"}

	m.EXPECT().CreateAgenda(gomock.Any(), item).Return(int64(8), nil)
	m.EXPECT().CreateAgenda(gomock.Any(), models.AgendaRequest{EventID: 2}).
		Return(int64(0), errors.Join(services.ErrInvalidInput, errors.New("agenda_title is required")))
	m.EXPECT().ListAgenda(gomock.Any(), int64(2)).Return([]models.AgendaDB{{AgendaID: 8, EventID: 2, Title: "Keynote", Status: "Pending"}}, nil)
	m.EXPECT().UpdateAgenda(gomock.Any(), int64(8), gomock.Any()).Return(services.ErrNotFound)
	m.EXPECT().DeleteAgenda(gomock.Any(), int64(8)).Return(errors.New("db down"))

	runPlanningCases(t, []planningCase{
		{
			name: "create", method: http.MethodPost, target: "/agenda", body: item,
			handler: NewCreateAgendaHandler(m), expectedCode: http.StatusCreated,
			expectedBody: `{"success":true,"id":8}`,
		},
		{
			name: "create invalid", method: http.MethodPost, target: "/agenda", body: models.AgendaRequest{EventID: 2},
			handler: NewCreateAgendaHandler(m), expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid input\nagenda_title is required"}`,
		},
		{
			name: "list", method: http.MethodGet, target: "/agenda?event_id=2",
			handler: NewListAgendaHandler(m), expectedCode: http.StatusOK,
			expectedBody: `[{"agenda_id":8,"event_id":2,"agenda_timeframe":null,"agenda_title":"Keynote",
				"agenda_description":null,"agenda_status":"Pending","created_at":"0001-01-01T00:00:00Z"}]`,
		},
		{
			name: "update missing", method: http.MethodPut, target: "/agenda",
			body:    models.AgendaRequest{AgendaID: 8, EventID: 2, Title: "Keynote"},
			handler: NewUpdateAgendaHandler(m), expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Agenda item not found"}`,
		},
		{
			name: "delete failure", method: http.MethodDelete, target: "/agenda?agenda_id=8",
			handler: NewDeleteAgendaHandler(m), expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	})
}

func TestExpenseHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockExpenseManager(ctrl)
	expense := models.ExpenseRequest{EventID: 1, Category: "Catering", Title: "Lunch", Amount: 250.5}

	m.EXPECT().ListExpenses(gomock.Any(), int64(1)).Return([]models.ExpenseDB{{ExpenseID: 12, Category: "Catering", Title: "Lunch", Amount: 250.5}}, nil)
	m.EXPECT().CreateExpense(gomock.Any(), expense).Return(int64(12), nil)
	m.EXPECT().UpdateExpense(gomock.Any(), int64(12), expense).Return(nil)
	m.EXPECT().UpdateExpense(gomock.Any(), int64(13), expense).Return(services.ErrNotFound)
	m.EXPECT().DeleteExpense(gomock.Any(), int64(12)).Return(nil)

	runPlanningCases(t, []planningCase{
		{
			name: "list", method: http.MethodGet, target: "/expense?event_id=1",
			handler: NewListExpensesHandler(m), expectedCode: http.StatusOK,
			expectedBody: `[{"expense_id":12,"category":"Catering","title":"Lunch","amount":250.5,"description":""}]`,
		},
		{
			name: "create", method: http.MethodPost, target: "/expense", body: expense,
			handler: NewCreateExpenseHandler(m), expectedCode: http.StatusCreated,
			expectedBody: `{"success":true,"expense_id":12}`,
		},
		{
			name: "create invalid json", method: http.MethodPost, target: "/expense", body: "[",
			handler: NewCreateExpenseHandler(m), expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name: "update", method: http.MethodPut, target: "/expense?expense_id=12", body: expense,
			handler: NewUpdateExpenseHandler(m), expectedCode: http.StatusOK, expectedBody: `{"success":true}`,
		},
		{
			name: "update missing", method: http.MethodPut, target: "/expense?expense_id=13", body: expense,
			handler: NewUpdateExpenseHandler(m), expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Expense not found"}`,
		},
		{
			name: "update without id", method: http.MethodPut, target: "/expense", body: expense,
			handler: NewUpdateExpenseHandler(m), expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"expense_id must be a positive integer"}`,
		},
		{
			name: "delete", method: http.MethodDelete, target: "/expense?expense_id=12",
			handler: NewDeleteExpenseHandler(m), expectedCode: http.StatusOK, expectedBody: `{"success":true}`,
		},
	})
}
