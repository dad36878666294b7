package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedEventMocks struct {
	savedWriter *services.MockSavedEventWriter
	savedReader *services.MockSavedEventReader
	linkWriter  *services.MockUserEventWriter
	linkReader  *services.MockUserEventReader
	kafka       *services.MockKafkaWriter
}

func newSavedEventService(t *testing.T) (*services.SavedEventService, savedEventMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := savedEventMocks{
		savedWriter: services.NewMockSavedEventWriter(ctrl),
		savedReader: services.NewMockSavedEventReader(ctrl),
		linkWriter:  services.NewMockUserEventWriter(ctrl),
		linkReader:  services.NewMockUserEventReader(ctrl),
		kafka:       services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewSavedEventService(m.savedWriter, m.savedReader, m.linkWriter, m.linkReader, m.kafka)
	return svc, m
}

// expectActivity captures the single activity written to Kafka.
func expectActivity(t *testing.T, k *services.MockKafkaWriter, got *models.Activity) {
	k.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			require.NoError(t, json.Unmarshal(msgs[0].Value, got))
			assert.Equal(t, got.ActivityID, string(msgs[0].Key))
			return nil
		})
}

func TestSavedEventService_Save(t *testing.T) {
	start := "2025-03-01T19:30:00"
	blank := " "

	tests := []struct {
		name      string
		req       models.SaveEventRequest
		created   bool
		storeErr  error
		wantErr   error
		wantStore bool
	}{
		{
			name:      "new bookmark is published",
			req:       models.SaveEventRequest{EventID: 42, EventName: "Gig", EventURL: "https://e/42", DatetimeStart: &start, ThumbnailURL: &blank},
			created:   true,
			wantStore: true,
		},
		{
			name:      "duplicate bookmark is a no-op",
			req:       models.SaveEventRequest{EventID: 42, EventName: "Gig", EventURL: "https://e/42"},
			created:   false,
			wantStore: true,
		},
		{
			name:    "missing event id",
			req:     models.SaveEventRequest{EventName: "Gig", EventURL: "https://e/42"},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:    "missing name",
			req:     models.SaveEventRequest{EventID: 1, EventName: "  ", EventURL: "https://e/1"},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:    "bad datetime",
			req:     models.SaveEventRequest{EventID: 1, EventName: "Gig", EventURL: "https://e/1", DatetimeEnd: ptr("tomorrow")},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:      "store error",
			req:       models.SaveEventRequest{EventID: 3, EventName: "Gig", EventURL: "https://e/3"},
			storeErr:  errors.New("db down"),
			wantErr:   errors.New("db down"),
			wantStore: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSavedEventService(t)

			var activity models.Activity
			if tt.wantStore {
				m.savedWriter.EXPECT().
					Save(gomock.Any(), int64(9), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, in models.SavedEventInput) (bool, error) {
						assert.Equal(t, tt.req.EventID, in.EventID)
						assert.Nil(t, in.ThumbnailURL)
						if tt.req.DatetimeStart != nil {
							require.NotNil(t, in.DatetimeStart)
							assert.Equal(t, time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC), *in.DatetimeStart)
						}
						return tt.created, tt.storeErr
					})
			}
			if tt.created {
				expectActivity(t, m.kafka, &activity)
			}

			err := svc.Save(context.Background(), 9, tt.req)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			if tt.created {
				assert.Equal(t, models.OperationSave, activity.Operation)
				assert.Equal(t, int64(9), activity.UserID)
				assert.Equal(t, int64(42), activity.EventID)
				assert.Equal(t, "Gig", activity.Detail)
			}
		})
	}
}

func TestSavedEventService_Save_WithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockSavedEventWriter(ctrl)
	svc := services.NewSavedEventService(writer, nil, nil, nil, nil)

	writer.EXPECT().Save(gomock.Any(), int64(1), gomock.Any()).Return(true, nil)
	err := svc.Save(context.Background(), 1, models.SaveEventRequest{EventID: 5, EventName: "x", EventURL: "u"})
	assert.NoError(t, err)
}

func TestSavedEventService_Save_KafkaFailureIsIgnored(t *testing.T) {
	svc, m := newSavedEventService(t)

	m.savedWriter.EXPECT().Save(gomock.Any(), int64(1), gomock.Any()).Return(true, nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	err := svc.Save(context.Background(), 1, models.SaveEventRequest{EventID: 5, EventName: "x", EventURL: "u"})
	assert.NoError(t, err)
}

func TestSavedEventService_Unsave(t *testing.T) {
	svc, m := newSavedEventService(t)
	ctx := context.Background()

	var activity models.Activity
	m.savedWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(42)).Return(int64(1), nil)
	expectActivity(t, m.kafka, &activity)
	n, err := svc.Unsave(ctx, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, models.OperationUnsave, activity.Operation)

	m.savedWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(43)).Return(int64(0), nil)
	n, err = svc.Unsave(ctx, 1, 43)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.Unsave(ctx, 1, 0)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	m.savedWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(44)).Return(int64(0), errors.New("db down"))
	_, err = svc.Unsave(ctx, 1, 44)
	assert.EqualError(t, err, "db down")
}

func TestSavedEventService_List(t *testing.T) {
	svc, m := newSavedEventService(t)

	want := []models.SavedEventDB{{ID: 1, EventID: 42, Favorite: true}, {ID: 2, EventID: 7}}
	m.savedReader.EXPECT().ListByUser(gomock.Any(), int64(3)).Return(want, nil)
	got, err := svc.List(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	m.savedReader.EXPECT().ListByUser(gomock.Any(), int64(4)).Return(nil, errors.New("db down"))
	_, err = svc.List(context.Background(), 4)
	assert.Error(t, err)
}

func TestSavedEventService_Favorites(t *testing.T) {
	svc, m := newSavedEventService(t)
	ctx := context.Background()

	t.Run("toggle upserts and publishes", func(t *testing.T) {
		var activity models.Activity
		m.linkWriter.EXPECT().Upsert(gomock.Any(), int64(1), int64(10), true).Return(nil)
		expectActivity(t, m.kafka, &activity)

		require.NoError(t, svc.ToggleFavorite(ctx, 1, 10, true))
		assert.Equal(t, models.OperationFavorite, activity.Operation)
		assert.Equal(t, "true", activity.Detail)
	})

	t.Run("toggle rejects missing event", func(t *testing.T) {
		assert.ErrorIs(t, svc.ToggleFavorite(ctx, 1, 0, true), services.ErrInvalidInput)
	})

	t.Run("set favorite on missing link", func(t *testing.T) {
		m.linkWriter.EXPECT().SetFavorite(gomock.Any(), int64(1), int64(11), false).Return(int64(0), nil)
		assert.ErrorIs(t, svc.SetFavorite(ctx, 1, 11, false), services.ErrNotFound)
	})

	t.Run("set favorite on existing link", func(t *testing.T) {
		var activity models.Activity
		m.linkWriter.EXPECT().SetFavorite(gomock.Any(), int64(1), int64(10), false).Return(int64(1), nil)
		expectActivity(t, m.kafka, &activity)

		require.NoError(t, svc.SetFavorite(ctx, 1, 10, false))
		assert.Equal(t, "false", activity.Detail)
	})

	t.Run("unlink", func(t *testing.T) {
		var activity models.Activity
		m.linkWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(int64(1), nil)
		expectActivity(t, m.kafka, &activity)

		n, err := svc.Unlink(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Equal(t, models.OperationUnlink, activity.Operation)
	})

	t.Run("unlink absent", func(t *testing.T) {
		m.linkWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(12)).Return(int64(0), nil)
		n, err := svc.Unlink(ctx, 1, 12)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("list", func(t *testing.T) {
		want := []models.FavoriteEventDB{{EventDB: models.EventDB{EventID: 10}, Favorite: true}}
		m.linkReader.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(want, nil)
		got, err := svc.ListFavorites(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func ptr[T any](v T) *T { return &v }
