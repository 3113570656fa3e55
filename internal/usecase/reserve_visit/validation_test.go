package reserve_visit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsoWeekday(t *testing.T) {
	// 2025-12-01 - понедельник
	assert.Equal(t, 1, isoWeekday(date(2025, 12, 1)))
	assert.Equal(t, 5, isoWeekday(date(2025, 12, 5)))
	assert.Equal(t, 6, isoWeekday(date(2025, 12, 6)))
	assert.Equal(t, 7, isoWeekday(date(2025, 12, 7)))
}

func TestIsSameWeek(t *testing.T) {
	monday := date(2025, 12, 1)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{"same day", monday, monday, true},
		{"monday and sunday of one week", monday, date(2025, 12, 7), true},
		{"friday and next monday", date(2025, 12, 5), date(2025, 12, 8), false},
		{"sunday and next monday", date(2025, 12, 7), date(2025, 12, 8), false},
		{"exactly seven days apart", monday, date(2025, 12, 8), false},
		{"previous sunday and monday", date(2025, 11, 30), monday, false},
		{"wednesday and saturday same week", date(2025, 12, 3), date(2025, 12, 6), true},
		{"order independent", date(2025, 12, 7), date(2025, 12, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSameWeek(tt.a, tt.b))
			assert.Equal(t, tt.want, isSameWeek(tt.b, tt.a))
		})
	}
}

func TestSecondsSinceMidnight(t *testing.T) {
	loc := time.UTC
	ts := time.Date(2025, 12, 8, 10, 0, 0, 0, loc)
	assert.Equal(t, int64(36000), secondsSinceMidnight(ts))

	ts = time.Date(2025, 12, 8, 0, 0, 1, 0, loc)
	assert.Equal(t, int64(1), secondsSinceMidnight(ts))

	ts = time.Date(2025, 12, 8, 19, 40, 0, 0, loc)
	assert.Equal(t, int64(70800), secondsSinceMidnight(ts))
}

func TestValidateRequest(t *testing.T) {
	err := validateRequest(&Request{FlatID: 0, VisitorID: 1, StartTime: 36000})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = validateRequest(&Request{FlatID: 1, VisitorID: -5, StartTime: 36000})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = validateRequest(&Request{FlatID: 1, VisitorID: 1, StartTime: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = validateRequest(&Request{FlatID: 1, VisitorID: 1, StartTime: 36000})
	assert.NoError(t, err)
}
