package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatetime(t *testing.T) {
	want := time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   *string
		want    *time.Time
		wantErr bool
	}{
		{name: "nil", value: nil},
		{name: "blank", value: strPtr("  ")},
		{name: "rfc3339", value: strPtr("2025-03-01T19:30:00Z"), want: &want},
		{name: "rfc3339 offset", value: strPtr("2025-03-02T06:30:00+11:00"), want: &want},
		{name: "local seconds", value: strPtr("2025-03-01T19:30:00"), want: &want},
		{name: "local minutes", value: strPtr("2025-03-01T19:30"), want: &want},
		{name: "space separated", value: strPtr("2025-03-01 19:30"), want: &want},
		{name: "date only", value: strPtr("2025-03-01"), want: timePtr(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))},
		{name: "garbage", value: strPtr("next friday"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDatetime("datetime_start", tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.ErrorContains(t, err, "datetime_start")
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
