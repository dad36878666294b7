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

func TestEventHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := int64(1)
	launch := &models.EventDB{EventID: 10, UserID: &owner, Title: "Launch", Budget: 1500}
	launchJSON := `{"event_id":10,"user_id":1,"event_title":"Launch","event_description":null,
		"event_startdatetime":null,"event_enddatetime":null,"event_budget":1500,"venue_id":null,
		"venue_place_id":null,"venue_name":null,"venue_address":null,"created_at":"0001-01-01T00:00:00Z"}`

	tests := []struct {
		name         string
		method       string
		target       string
		params       []string
		body         any
		anonymous    bool
		mockSetup    func(m *MockEventManager)
		handler      func(EventManager) http.HandlerFunc
		expectedCode int
		expectedBody string
	}{
		{
			name:   "list own",
			method: http.MethodGet,
			target: "/events",
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().ListByUser(gomock.Any(), int64(1)).Return([]models.EventDB{*launch}, nil)
			},
			handler:      NewListEventsHandler,
			expectedCode: http.StatusOK,
			expectedBody: "[" + launchJSON + "]",
		},
		{
			name:         "list own without session",
			method:       http.MethodGet,
			target:       "/events",
			anonymous:    true,
			handler:      NewListEventsHandler,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Unauthorized"}`,
		},
		{
			name:   "list all empty",
			method: http.MethodGet,
			target: "/events/all",
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
			},
			handler:      NewListAllEventsHandler,
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:   "get owned",
			method: http.MethodGet,
			target: "/events/10",
			params: []string{"event_id", "10"},
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(launch, nil)
			},
			handler:      NewGetEventHandler,
			expectedCode: http.StatusOK,
			expectedBody: launchJSON,
		},
		{
			name:   "get not owned",
			method: http.MethodGet,
			target: "/events/11",
			params: []string{"event_id", "11"},
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Get(gomock.Any(), int64(1), int64(11)).Return(nil, services.ErrNotFound)
			},
			handler:      NewGetEventHandler,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Event not found"}`,
		},
		{
			name:         "get bad id",
			method:       http.MethodGet,
			target:       "/events/x",
			params:       []string{"event_id", "x"},
			handler:      NewGetEventHandler,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"event_id must be a positive integer"}`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/events",
			body:   models.EventRequest{Title: "Launch"},
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Create(gomock.Any(), int64(1), models.EventRequest{Title: "Launch"}).Return(launch, nil)
			},
			handler:      NewCreateEventHandler,
			expectedCode: http.StatusCreated,
			expectedBody: launchJSON,
		},
		{
			name:   "create invalid",
			method: http.MethodPost,
			target: "/events",
			body:   models.EventRequest{},
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, errors.Join(services.ErrInvalidInput, errors.New("event_title is required")))
			},
			handler:      NewCreateEventHandler,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid input\nevent_title is required"}`,
		},
		{
			name:   "update not owned",
			method: http.MethodPut,
			target: "/events/10",
			params: []string{"event_id", "10"},
			body:   models.EventRequest{Title: "New"},
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Update(gomock.Any(), int64(1), int64(10), gomock.Any()).Return(nil, services.ErrNotFound)
			},
			handler:      NewUpdateEventHandler,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Event not found"}`,
		},
		{
			name:   "update",
			method: http.MethodPut,
			target: "/events/10",
			params: []string{"event_id", "10"},
			body:   models.EventRequest{Title: "Launch"},
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Update(gomock.Any(), int64(1), int64(10), gomock.Any()).Return(launch, nil)
			},
			handler:      NewUpdateEventHandler,
			expectedCode: http.StatusOK,
			expectedBody: launchJSON,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/events/10",
			params: []string{"event_id", "10"},
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(nil)
			},
			handler:      NewDeleteEventHandler,
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true}`,
		},
		{
			name:   "delete store failure",
			method: http.MethodDelete,
			target: "/events/10",
			params: []string{"event_id", "10"},
			mockSetup: func(m *MockEventManager) {
				m.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(errors.New("db down"))
			},
			handler:      NewDeleteEventHandler,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEventManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := newRequest(t, tt.method, tt.target, tt.body)
			if tt.params != nil {
				req = withURLParams(req, tt.params...)
			}
			if !tt.anonymous {
				req = withUser(req, 1)
			}
			rr := httptest.NewRecorder()
			tt.handler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
