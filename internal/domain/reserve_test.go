package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReserveEndTime(t *testing.T) {
	r := Reserve{
		StartTime:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
	}
	assert.Equal(t, time.Date(2026, 3, 2, 10, 45, 0, 0, time.UTC), r.EndTime())
}

func TestAgendaEntryOverlaps(t *testing.T) {
	entry := AgendaEntry{
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	}

	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside", at(10, 15), at(10, 45), true},
		{"covering", at(9, 0), at(12, 0), true},
		{"overlapping start", at(9, 30), at(10, 30), true},
		{"overlapping end", at(10, 30), at(11, 30), true},
		{"touching before", at(9, 0), at(10, 0), false},
		{"touching after", at(11, 0), at(12, 0), false},
		{"disjoint before", at(8, 0), at(9, 0), false},
		{"disjoint after", at(12, 0), at(13, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entry.Overlaps(tt.start, tt.end))
		})
	}
}

func TestReserveOverlapsMirrorsAgendaRule(t *testing.T) {
	r := Reserve{
		StartTime:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	}

	assert.True(t, r.Overlaps(
		time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC),
	))
	assert.False(t, r.Overlaps(
		time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	))
}
