package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"23:59", "23:59", false},
		{"00:00", "00:00", false},
		{"24:00", "", true},
		{"9:00", "", true},
		{"09:60", "", true},
		{"0900", "", true},
		{"", "", true},
		{"banana", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
		})
	}
}

func TestTimeString_At(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 23, 55, 11, 999, time.UTC)
	anchored, err := ts.At(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC), anchored)
}

func TestTimeString_AtKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)

	anchored, err := ts.At(time.Date(2026, 3, 2, 0, 0, 0, 0, loc))
	require.NoError(t, err)

	assert.Equal(t, loc, anchored.Location())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:45")
	require.NoError(t, err)

	later, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "11:15", later.String())

	// Wraps past midnight like TIME arithmetic.
	wrapped, err := ts.AddMinutes(14 * 60)
	require.NoError(t, err)
	assert.Equal(t, "00:45", wrapped.String())

	_, err = ts.AddMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidMinutes)
}

func TestTimeString_Ordering(t *testing.T) {
	early, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("17:30")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_JSONRoundTrip(t *testing.T) {
	ts, err := NewTimeStringFromString("12:05")
	require.NoError(t, err)

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"12:05"`, string(data))

	var decoded TimeString
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ts, decoded)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("postgres time with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("13:45:00"))
		assert.Equal(t, "13:45", ts.String())
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:15:30")))
		assert.Equal(t, "08:15", ts.String())
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 3, 2, 16, 20, 0, 0, time.UTC)))
		assert.Equal(t, "16:20", ts.String())
	})

	t.Run("nil resets", func(t *testing.T) {
		ts := TimeString("09:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
	})
}

func TestTimeString_Value(t *testing.T) {
	ts := TimeString("11:30")
	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "11:30", v)

	var zero TimeString
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	bad := TimeString("25:99")
	_, err = bad.Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
