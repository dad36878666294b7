package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSVPService_Create(t *testing.T) {
	tests := []struct {
		name          string
		eventID       int64
		participantID int64
		status        *string
		wantStatus    string
		created       bool
		storeErr      error
		wantErr       error
	}{
		{name: "defaults to pending", eventID: 1, participantID: 2, wantStatus: models.RSVPPending, created: true},
		{name: "empty status defaults to pending", eventID: 1, participantID: 2, status: ptr(""), wantStatus: models.RSVPPending, created: true},
		{name: "explicit status", eventID: 1, participantID: 2, status: ptr(models.RSVPAccepted), wantStatus: models.RSVPAccepted, created: true},
		{name: "existing link", eventID: 1, participantID: 2, wantStatus: models.RSVPPending, created: false},
		{name: "invalid status", eventID: 1, participantID: 2, status: ptr("Maybe"), wantErr: services.ErrInvalidInput},
		{name: "missing participant", eventID: 1, wantErr: services.ErrInvalidInput},
		{name: "missing event", participantID: 2, wantErr: services.ErrInvalidInput},
		{name: "store error", eventID: 1, participantID: 2, wantStatus: models.RSVPPending, storeErr: errors.New("fk violation"), wantErr: errors.New("fk violation")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := services.NewMockEventParticipantWriter(ctrl)
			kafkaWriter := services.NewMockKafkaWriter(ctrl)
			svc := services.NewRSVPService(writer, services.NewMockEventParticipantReader(ctrl), kafkaWriter)

			if tt.wantStatus != "" {
				writer.EXPECT().Create(gomock.Any(), tt.eventID, tt.participantID, tt.wantStatus).Return(tt.created, tt.storeErr)
			}
			var activity models.Activity
			if tt.created {
				expectActivity(t, kafkaWriter, &activity)
			}

			created, err := svc.Create(context.Background(), 5, tt.eventID, tt.participantID, tt.status)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.created, created)
			if tt.created {
				assert.Equal(t, models.OperationRSVPCreate, activity.Operation)
				assert.Equal(t, "participant_id=2 rsvp_status="+tt.wantStatus, activity.Detail)
			}
		})
	}
}

func TestRSVPService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockEventParticipantWriter(ctrl)
	svc := services.NewRSVPService(writer, nil, nil)
	ctx := context.Background()

	writer.EXPECT().UpdateStatus(gomock.Any(), int64(1), int64(2), models.RSVPDeclined).Return(int64(1), nil)
	assert.NoError(t, svc.UpdateStatus(ctx, 5, 1, 2, models.RSVPDeclined))

	writer.EXPECT().UpdateStatus(gomock.Any(), int64(1), int64(3), models.RSVPAccepted).Return(int64(0), nil)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 5, 1, 3, models.RSVPAccepted), services.ErrNotFound)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, 5, 1, 2, ""), services.ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 5, 1, 2, "accepted"), services.ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 5, 0, 2, models.RSVPAccepted), services.ErrInvalidInput)
}

func TestRSVPService_ListAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockEventParticipantWriter(ctrl)
	reader := services.NewMockEventParticipantReader(ctrl)
	svc := services.NewRSVPService(writer, reader, nil)
	ctx := context.Background()

	want := []models.EventParticipantDB{{ParticipantDB: models.ParticipantDB{ParticipantID: 2}, RSVPStatus: models.RSVPPending}}
	reader.EXPECT().ListByEvent(gomock.Any(), int64(1)).Return(want, nil)
	got, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.List(ctx, 0)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	writer.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(int64(1), nil)
	assert.NoError(t, svc.Remove(ctx, 5, 1, 2))

	writer.EXPECT().Delete(gomock.Any(), int64(1), int64(9)).Return(int64(0), nil)
	assert.NoError(t, svc.Remove(ctx, 5, 1, 9))

	writer.EXPECT().Delete(gomock.Any(), int64(1), int64(8)).Return(int64(0), errors.New("db down"))
	assert.EqualError(t, svc.Remove(ctx, 5, 1, 8), "db down")
}
