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

func TestParticipantService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockParticipantStore(ctrl)
	svc := services.NewParticipantService(store)
	ctx := context.Background()

	t.Run("search trims the term", func(t *testing.T) {
		want := []models.ParticipantDB{{ParticipantID: 1, Fullname: "Ada Lovelace"}}
		store.EXPECT().Search(gomock.Any(), "ada").Return(want, nil)
		got, err := svc.Search(ctx, "  ada ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("search error", func(t *testing.T) {
		store.EXPECT().Search(gomock.Any(), "").Return(nil, errors.New("db down"))
		_, err := svc.Search(ctx, "")
		assert.EqualError(t, err, "db down")
	})

	t.Run("get", func(t *testing.T) {
		store.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.ParticipantDB{ParticipantID: 1}, nil)
		p, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ParticipantID)

		store.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)
		_, err = svc.Get(ctx, 2)
		assert.ErrorIs(t, err, services.ErrNotFound)

		_, err = svc.Get(ctx, 0)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("create", func(t *testing.T) {
		category := int64(1)
		store.EXPECT().
			Create(gomock.Any(), models.ParticipantInput{Fullname: "Grace Hopper", CategoryID: &category}).
			Return(int64(5), nil)
		id, err := svc.Create(ctx, models.ParticipantRequest{Fullname: " Grace Hopper ", CategoryID: &category})
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)

		_, err = svc.Create(ctx, models.ParticipantRequest{})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("update", func(t *testing.T) {
		store.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(int64(1), nil)
		assert.NoError(t, svc.Update(ctx, 5, models.ParticipantRequest{Fullname: "Grace"}))

		store.EXPECT().Update(gomock.Any(), int64(6), gomock.Any()).Return(int64(0), nil)
		assert.ErrorIs(t, svc.Update(ctx, 6, models.ParticipantRequest{Fullname: "Grace"}), services.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		store.EXPECT().Delete(gomock.Any(), int64(6)).Return(int64(0), nil)
		assert.NoError(t, svc.Delete(ctx, 6))
		assert.ErrorIs(t, svc.Delete(ctx, -1), services.ErrInvalidInput)
	})

	t.Run("categories", func(t *testing.T) {
		want := []models.ParticipantCategoryDB{{CategoryID: 1, CategoryName: "Speaker"}}
		store.EXPECT().ListCategories(gomock.Any()).Return(want, nil)
		got, err := svc.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
