package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	tests := map[string]struct {
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		expected     bool
	}{
		"partial_overlap": {
			aStart: at(11, 20), aEnd: at(11, 40),
			bStart: at(11, 30), bEnd: at(12, 0),
			expected: true,
		},
		"touching_boundaries_do_not_overlap": {
			aStart: at(11, 0), aEnd: at(11, 30),
			bStart: at(11, 30), bEnd: at(12, 0),
			expected: false,
		},
		"contained_interval": {
			aStart: at(10, 0), aEnd: at(12, 0),
			bStart: at(10, 30), bEnd: at(11, 0),
			expected: true,
		},
		"identical_intervals": {
			aStart: at(10, 0), aEnd: at(11, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			expected: true,
		},
		"disjoint_intervals": {
			aStart: at(9, 0), aEnd: at(10, 0),
			bStart: at(14, 0), bEnd: at(15, 0),
			expected: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scheduling.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tc.expected, scheduling.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestMidnight(t *testing.T) {
	moment := time.Date(2025, 6, 2, 14, 35, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), scheduling.Midnight(moment))

	// Полночь остаётся полночью
	midnight := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, scheduling.Midnight(midnight))
}
