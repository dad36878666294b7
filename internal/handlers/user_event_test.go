package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserEventHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		method       string
		target       string
		body         any
		anonymous    bool
		mockSetup    func(m *MockFavoriteManager)
		handler      func(FavoriteManager) http.HandlerFunc
		expectedCode int
		expectedBody string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/user-event",
			mockSetup: func(m *MockFavoriteManager) {
				m.EXPECT().ListFavorites(gomock.Any(), int64(1)).Return([]models.FavoriteEventDB{
					{EventDB: models.EventDB{EventID: 7, Title: "Jazz"}, Favorite: true},
				}, nil)
			},
			handler:      NewListUserEventsHandler,
			expectedCode: http.StatusOK,
			expectedBody: `[{"event_id":7,"user_id":null,"event_title":"Jazz","event_description":null,
				"event_startdatetime":null,"event_enddatetime":null,"event_budget":0,"venue_id":null,
				"venue_place_id":null,"venue_name":null,"venue_address":null,
				"created_at":"0001-01-01T00:00:00Z","user_favorite":true}]`,
		},
		{
			name:         "list without session",
			method:       http.MethodGet,
			target:       "/user-event",
			anonymous:    true,
			handler:      NewListUserEventsHandler,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Unauthorized"}`,
		},
		{
			name:   "link defaults favorite to false",
			method: http.MethodPost,
			target: "/user-event",
			body:   map[string]any{"event_id": 7},
			mockSetup: func(m *MockFavoriteManager) {
				m.EXPECT().ToggleFavorite(gomock.Any(), int64(1), int64(7), false).Return(nil)
			},
			handler:      NewLinkUserEventHandler,
			expectedCode: http.StatusCreated,
			expectedBody: `{"ok":true}`,
		},
		{
			name:   "link as favourite",
			method: http.MethodPost,
			target: "/user-event",
			body:   map[string]any{"event_id": 7, "favorite": true},
			mockSetup: func(m *MockFavoriteManager) {
				m.EXPECT().ToggleFavorite(gomock.Any(), int64(1), int64(7), true).Return(nil)
			},
			handler:      NewLinkUserEventHandler,
			expectedCode: http.StatusCreated,
			expectedBody: `{"ok":true}`,
		},
		{
			name:         "link without session",
			method:       http.MethodPost,
			target:       "/user-event",
			body:         map[string]any{"event_id": 7},
			anonymous:    true,
			handler:      NewLinkUserEventHandler,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Unauthorized"}`,
		},
		{
			name:   "patch existing link",
			method: http.MethodPatch,
			target: "/user-event",
			body:   map[string]any{"event_id": 7, "favorite": false},
			mockSetup: func(m *MockFavoriteManager) {
				m.EXPECT().SetFavorite(gomock.Any(), int64(1), int64(7), false).Return(nil)
			},
			handler:      NewUpdateUserEventHandler,
			expectedCode: http.StatusOK,
			expectedBody: `{"ok":true}`,
		},
		{
			name:   "patch missing link",
			method: http.MethodPatch,
			target: "/user-event",
			body:   map[string]any{"event_id": 8, "favorite": true},
			mockSetup: func(m *MockFavoriteManager) {
				m.EXPECT().SetFavorite(gomock.Any(), int64(1), int64(8), true).Return(services.ErrNotFound)
			},
			handler:      NewUpdateUserEventHandler,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Link not found"}`,
		},
		{
			name:         "patch without favorite",
			method:       http.MethodPatch,
			target:       "/user-event",
			body:         map[string]any{"event_id": 8},
			handler:      NewUpdateUserEventHandler,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"favorite is required"}`,
		},
		{
			name:   "unlink",
			method: http.MethodDelete,
			target: "/user-event?event_id=7",
			mockSetup: func(m *MockFavoriteManager) {
				m.EXPECT().Unlink(gomock.Any(), int64(1), int64(7)).Return(int64(1), nil)
			},
			handler:      NewUnlinkUserEventHandler,
			expectedCode: http.StatusOK,
			expectedBody: `{"deleted":1}`,
		},
		{
			name:         "unlink without event id",
			method:       http.MethodDelete,
			target:       "/user-event",
			handler:      NewUnlinkUserEventHandler,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"event_id must be a positive integer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFavoriteManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := newRequest(t, tt.method, tt.target, tt.body)
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
