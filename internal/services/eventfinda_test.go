package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name string
		in   models.EventfindaQuery
		want models.EventfindaQuery
	}{
		{name: "zero values", in: models.EventfindaQuery{}, want: models.EventfindaQuery{Page: 1, Rows: 1}},
		{name: "in range", in: models.EventfindaQuery{Page: 3, Rows: 20}, want: models.EventfindaQuery{Page: 3, Rows: 20}},
		{name: "rows capped", in: models.EventfindaQuery{Page: 1, Rows: 500}, want: models.EventfindaQuery{Page: 1, Rows: services.EventfindaMaxRows}},
		{name: "negative page", in: models.EventfindaQuery{Page: -2, Rows: 10, Category: "music"}, want: models.EventfindaQuery{Page: 1, Rows: 10, Category: "music"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NormalizeQuery(tt.in))
		})
	}
}

func TestEventfindaService_Events(t *testing.T) {
	events := models.EventfindaEvents{json.RawMessage(`{"id":1}`)}
	query := models.EventfindaQuery{Page: 2, Rows: 1000}
	normalized := models.EventfindaQuery{Page: 2, Rows: services.EventfindaMaxRows}

	t.Run("cached location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := services.NewMockEventfindaReader(ctrl)
		cache := services.NewMockEventfindaCache(ctrl)
		svc := services.NewEventfindaService(reader, cache, "")

		cache.EXPECT().GetLocationID(gomock.Any(), services.DefaultLocationQuery).Return(int64(7), nil)
		reader.EXPECT().ListEvents(gomock.Any(), int64(7), normalized).Return(events, nil)

		got, err := svc.Events(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})

	t.Run("cache miss resolves and stores location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := services.NewMockEventfindaReader(ctrl)
		cache := services.NewMockEventfindaCache(ctrl)
		svc := services.NewEventfindaService(reader, cache, "sydney")

		gomock.InOrder(
			cache.EXPECT().GetLocationID(gomock.Any(), "sydney").Return(int64(0), errors.New("miss")),
			reader.EXPECT().FindLocationID(gomock.Any(), "sydney").Return(int64(9), nil),
			cache.EXPECT().SetLocationID(gomock.Any(), "sydney", int64(9)).Return(errors.New("redis down")),
			reader.EXPECT().ListEvents(gomock.Any(), int64(9), normalized).Return(events, nil),
		)

		got, err := svc.Events(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})

	t.Run("location lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := services.NewMockEventfindaReader(ctrl)
		cache := services.NewMockEventfindaCache(ctrl)
		svc := services.NewEventfindaService(reader, cache, "")

		cache.EXPECT().GetLocationID(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("miss"))
		reader.EXPECT().FindLocationID(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("upstream 502"))

		_, err := svc.Events(context.Background(), query)
		assert.EqualError(t, err, "upstream 502")
	})
}

func TestEventfindaService_Categories(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := services.NewMockEventfindaReader(ctrl)
		cache := services.NewMockEventfindaCache(ctrl)
		svc := services.NewEventfindaService(reader, cache, "")

		cache.EXPECT().GetCategories(gomock.Any()).Return([]byte(`[{"id":1}]`), nil)

		got, err := svc.Categories(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(got))
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := services.NewMockEventfindaReader(ctrl)
		cache := services.NewMockEventfindaCache(ctrl)
		svc := services.NewEventfindaService(reader, cache, "")

		cache.EXPECT().GetCategories(gomock.Any()).Return(nil, errors.New("miss"))
		reader.EXPECT().ListCategories(gomock.Any()).
			Return(models.EventfindaCategories{json.RawMessage(`{"id":2,"name":"Music"}`)}, nil)
		cache.EXPECT().SetCategories(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data []byte) error {
				assert.JSONEq(t, `[{"id":2,"name":"Music"}]`, string(data))
				return nil
			})

		got, err := svc.Categories(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":2,"name":"Music"}]`, string(got))
	})

	t.Run("upstream error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := services.NewMockEventfindaReader(ctrl)
		cache := services.NewMockEventfindaCache(ctrl)
		svc := services.NewEventfindaService(reader, cache, "")

		cache.EXPECT().GetCategories(gomock.Any()).Return(nil, errors.New("miss"))
		reader.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("upstream 500"))

		_, err := svc.Categories(context.Background())
		assert.EqualError(t, err, "upstream 500")
	})
}
