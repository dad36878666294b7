package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      models.EventRequest
		storeErr error
		wantErr  error
	}{
		{
			name: "valid event",
			req: models.EventRequest{
				Title:         " Launch ",
				StartDatetime: ptr("2025-05-01 18:00"),
				EndDatetime:   ptr("2025-05-01T21:00:00Z"),
				Budget:        ptr(1500.0),
			},
		},
		{name: "missing title", req: models.EventRequest{Title: " "}, wantErr: services.ErrInvalidInput},
		{name: "negative budget", req: models.EventRequest{Title: "Launch", Budget: ptr(-1.0)}, wantErr: services.ErrInvalidInput},
		{
			name:    "end before start",
			req:     models.EventRequest{Title: "Launch", StartDatetime: ptr("2025-05-02"), EndDatetime: ptr("2025-05-01")},
			wantErr: services.ErrInvalidInput,
		},
		{name: "bad start", req: models.EventRequest{Title: "Launch", StartDatetime: ptr("soon")}, wantErr: services.ErrInvalidInput},
		{name: "store error", req: models.EventRequest{Title: "Launch"}, storeErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := services.NewMockEventStore(ctrl)
			svc := services.NewEventService(store)

			var stored models.EventInput
			if !errors.Is(tt.wantErr, services.ErrInvalidInput) {
				store.EXPECT().
					Create(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, in models.EventInput) (int64, error) {
						stored = in
						return 10, tt.storeErr
					})
			}
			if tt.wantErr == nil {
				store.EXPECT().GetByID(gomock.Any(), int64(1), int64(10)).Return(&models.EventDB{EventID: 10, Title: "Launch"}, nil)
			}

			event, err := svc.Create(context.Background(), 1, tt.req)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), event.EventID)
			assert.Equal(t, "Launch", stored.Title)
			assert.Equal(t, 1500.0, stored.Budget)
			require.NotNil(t, stored.StartDatetime)
			assert.Equal(t, time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC), *stored.StartDatetime)
			require.NotNil(t, stored.EndDatetime)
			assert.Equal(t, time.Date(2025, 5, 1, 21, 0, 0, 0, time.UTC), *stored.EndDatetime)
		})
	}
}

func TestEventService_GetUpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockEventStore(ctrl)
	svc := services.NewEventService(store)
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		store.EXPECT().GetByID(gomock.Any(), int64(1), int64(99)).Return(nil, nil)
		_, err := svc.Get(ctx, 1, 99)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("update owned", func(t *testing.T) {
		store.EXPECT().Update(gomock.Any(), int64(1), int64(10), gomock.Any()).Return(int64(1), nil)
		store.EXPECT().GetByID(gomock.Any(), int64(1), int64(10)).Return(&models.EventDB{EventID: 10, Title: "New"}, nil)
		event, err := svc.Update(ctx, 1, 10, models.EventRequest{Title: "New"})
		require.NoError(t, err)
		assert.Equal(t, "New", event.Title)
	})

	t.Run("update not owned", func(t *testing.T) {
		store.EXPECT().Update(gomock.Any(), int64(2), int64(10), gomock.Any()).Return(int64(0), nil)
		_, err := svc.Update(ctx, 2, 10, models.EventRequest{Title: "New"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("update invalid", func(t *testing.T) {
		_, err := svc.Update(ctx, 1, 10, models.EventRequest{})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("delete owned", func(t *testing.T) {
		store.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(int64(1), nil)
		assert.NoError(t, svc.Delete(ctx, 1, 10))
	})

	t.Run("delete not owned", func(t *testing.T) {
		store.EXPECT().Delete(gomock.Any(), int64(2), int64(10)).Return(int64(0), nil)
		assert.ErrorIs(t, svc.Delete(ctx, 2, 10), services.ErrNotFound)
	})

	t.Run("lists", func(t *testing.T) {
		mine := []models.EventDB{{EventID: 10}}
		all := []models.EventDB{{EventID: 10}, {EventID: 11}}
		store.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(mine, nil)
		store.EXPECT().ListAll(gomock.Any()).Return(all, nil)

		got, err := svc.ListByUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, mine, got)

		got, err = svc.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})
}
