package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackendTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "space separated implicit UTC",
			input: "2025-06-27 00:28:00",
			want:  time.Date(2025, 6, 27, 0, 28, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with zone",
			input: "2025-06-27T00:28:00Z",
			want:  time.Date(2025, 6, 27, 0, 28, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset normalized to UTC",
			input: "2025-06-27T05:58:00+05:30",
			want:  time.Date(2025, 6, 27, 0, 28, 0, 0, time.UTC),
		},
		{
			name:  "ISO without zone treated as UTC",
			input: "2025-06-27T00:28:00",
			want:  time.Date(2025, 6, 27, 0, 28, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  2025-06-27 00:28:00 ",
			want:  time.Date(2025, 6, 27, 0, 28, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "not a time",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBackendTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got.Time, tt.want)
		})
	}
}

func TestUTCTimeJSON(t *testing.T) {
	t.Run("unmarshal booking payload", func(t *testing.T) {
		var booking Booking
		data := []byte(`{"id":1,"event_id":2,"slot_id":3,"created_at":"2025-06-20T10:00:00","slot_time":"2025-06-27 00:28:00"}`)
		require.NoError(t, json.Unmarshal(data, &booking))

		assert.Equal(t, time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC), booking.CreatedAt.Time)
		assert.Equal(t, time.Date(2025, 6, 27, 0, 28, 0, 0, time.UTC), booking.SlotTime.Time)
	})

	t.Run("marshal emits RFC3339 UTC", func(t *testing.T) {
		ut := UTCTime{time.Date(2025, 6, 27, 0, 28, 0, 0, time.UTC)}
		data, err := json.Marshal(ut)
		require.NoError(t, err)
		assert.Equal(t, `"2025-06-27T00:28:00Z"`, string(data))
	})

	t.Run("null leaves zero value", func(t *testing.T) {
		var ut UTCTime
		require.NoError(t, ut.UnmarshalJSON([]byte("null")))
		assert.True(t, ut.IsZero())
	})

	t.Run("unquoted value is rejected", func(t *testing.T) {
		var ut UTCTime
		assert.Error(t, ut.UnmarshalJSON([]byte("12345")))
	})
}

func TestEventSlotByID(t *testing.T) {
	event := &Event{
		Slots: []Slot{
			{ID: 1, AvailableSlots: 2},
			{ID: 2, AvailableSlots: 0},
		},
	}

	slot, ok := event.SlotByID(2)
	require.True(t, ok)
	assert.Equal(t, int64(2), slot.ID)

	_, ok = event.SlotByID(99)
	assert.False(t, ok)
}
