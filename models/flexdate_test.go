package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestFlexDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2025-06-15T10:30:00Z"`, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"plain date", `"2025-06-15"`, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"unix millis number", `1750000000000`, time.UnixMilli(1750000000000)},
		{"unix millis string", `"1750000000000"`, time.UnixMilli(1750000000000)},
		{"timestamp object", `{"seconds": 1750000000, "nanoseconds": 0}`, time.Unix(1750000000, 0)},
		{"underscore timestamp object", `{"_seconds": 1750000000}`, time.Unix(1750000000, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d FlexDate
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.True(t, d.Time.Equal(tt.want), "got %v, want %v", d.Time, tt.want)
		})
	}
}

func TestFlexDateUnmarshalJSONNull(t *testing.T) {
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestFlexDateUnmarshalJSONRejectsGarbage(t *testing.T) {
	var d FlexDate
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
	assert.Error(t, json.Unmarshal([]byte(`{"minutes": 5}`), &d))
}

func TestFlexDateMarshalJSON(t *testing.T) {
	d := NewFlexDate(time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-15T10:30:00Z"`, string(out))

	out, err = json.Marshal(FlexDate{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestFlexDateBSONDecoding(t *testing.T) {
	when := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("native datetime", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"startDate": when})
		require.NoError(t, err)

		var doc struct {
			StartDate FlexDate `bson:"startDate"`
		}
		require.NoError(t, bson.Unmarshal(raw, &doc))
		assert.True(t, doc.StartDate.Time.Equal(when))
	})

	t.Run("date string", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"startDate": "2025-06-15"})
		require.NoError(t, err)

		var doc struct {
			StartDate FlexDate `bson:"startDate"`
		}
		require.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), doc.StartDate.Time)
	})

	t.Run("unix millis int64", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"startDate": when.UnixMilli()})
		require.NoError(t, err)

		var doc struct {
			StartDate FlexDate `bson:"startDate"`
		}
		require.NoError(t, bson.Unmarshal(raw, &doc))
		assert.True(t, doc.StartDate.Time.Equal(when))
	})
}

func TestFlexDateBSONRoundTrip(t *testing.T) {
	when := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	booking := Booking{
		BookingID:   "b1",
		EquipmentID: "e1",
		TotalAmount: 100,
		Status:      BookingCompleted,
		StartDate:   NewFlexDate(when),
	}

	raw, err := bson.Marshal(booking)
	require.NoError(t, err)

	var decoded Booking
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.True(t, decoded.StartDate.Time.Equal(when))
	assert.Equal(t, booking.BookingID, decoded.BookingID)
}
