package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEventRepositories(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	writer := NewUserEventWriteRepository(db, nil)
	reader := NewUserEventReadRepository(db)

	userID := insertUser(t, db, "fan@example.com")
	early := insertEvent(t, db, userID, "Early", at(9))
	late := insertEvent(t, db, userID, "Late", at(21))

	t.Run("UpsertCreatesThenOverwrites", func(t *testing.T) {
		require.NoError(t, writer.Upsert(ctx, userID, early, false))
		require.NoError(t, writer.Upsert(ctx, userID, late, false))
		require.NoError(t, writer.Upsert(ctx, userID, late, true))

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM user_events WHERE user_id = ?", userID))
		assert.Equal(t, 2, count)

		events, err := reader.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, late, events[0].EventID)
		assert.True(t, events[0].Favorite)
		assert.Equal(t, "Late", events[0].Title)
		assert.Equal(t, early, events[1].EventID)
		assert.False(t, events[1].Favorite)
	})

	t.Run("SetFavorite", func(t *testing.T) {
		n, err := writer.SetFavorite(ctx, userID, early, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = writer.SetFavorite(ctx, userID, 424242, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		events, err := reader.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		// both favourites now, so start time decides
		assert.Equal(t, early, events[0].EventID)
		assert.Equal(t, late, events[1].EventID)
	})

	t.Run("Delete", func(t *testing.T) {
		n, err := writer.Delete(ctx, userID, early)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = writer.Delete(ctx, userID, early)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}
