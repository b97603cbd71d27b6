package booking

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testBooking(t *testing.T, start, end time.Time) Booking {
	t.Helper()
	b, err := New(start, end)
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "multi-day range",
			start:     date(2025, 8, 1),
			end:       date(2025, 8, 3),
			wantStart: date(2025, 8, 1),
			wantEnd:   date(2025, 8, 3),
		},
		{
			name:      "single day",
			start:     date(2025, 8, 1),
			end:       date(2025, 8, 1),
			wantStart: date(2025, 8, 1),
			wantEnd:   date(2025, 8, 1),
		},
		{
			name:      "time of day discarded",
			start:     time.Date(2025, 8, 1, 23, 59, 0, 0, time.UTC),
			end:       time.Date(2025, 8, 2, 0, 1, 0, 0, time.UTC),
			wantStart: date(2025, 8, 1),
			wantEnd:   date(2025, 8, 2),
		},
		{
			name:      "same day with end earlier in the day is valid",
			start:     time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC),
			end:       time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
			wantStart: date(2025, 8, 1),
			wantEnd:   date(2025, 8, 1),
		},
		{
			name:    "end before start",
			start:   date(2025, 1, 5),
			end:     date(2025, 1, 3),
			wantErr: true,
		},
		{
			name:    "end one day before start",
			start:   date(2025, 1, 5),
			end:     time.Date(2025, 1, 4, 23, 59, 59, 0, time.UTC),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, Booking{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.Start())
			assert.Equal(t, tt.wantEnd, got.End())
		})
	}
}

func TestNewInvalidRangeError(t *testing.T) {
	_, err := New(date(2025, 1, 5), date(2025, 1, 3))
	require.Error(t, err)

	var rangeErr *InvalidRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, date(2025, 1, 5), rangeErr.Start)
	assert.Equal(t, date(2025, 1, 3), rangeErr.End)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, "invalid booking range: end 2025-01-03 is before start 2025-01-05", err.Error())
}

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []time.Time
	}{
		{
			name:  "single day",
			start: date(2025, 8, 10),
			end:   date(2025, 8, 10),
			want:  []time.Time{date(2025, 8, 10)},
		},
		{
			name:  "three days",
			start: date(2025, 8, 1),
			end:   date(2025, 8, 3),
			want:  []time.Time{date(2025, 8, 1), date(2025, 8, 2), date(2025, 8, 3)},
		},
		{
			name:  "crosses month and year",
			start: date(2024, 12, 30),
			end:   date(2025, 1, 2),
			want:  []time.Time{date(2024, 12, 30), date(2024, 12, 31), date(2025, 1, 1), date(2025, 1, 2)},
		},
		{
			name:  "leap day",
			start: date(2024, 2, 28),
			end:   date(2024, 3, 1),
			want:  []time.Time{date(2024, 2, 28), date(2024, 2, 29), date(2024, 3, 1)},
		},
		{
			name:  "starts on the zero date",
			start: time.Time{},
			end:   date(1, 1, 3),
			want:  []time.Time{date(1, 1, 1), date(1, 1, 2), date(1, 1, 3)},
		},
		{
			name:  "runs past year 9999",
			start: date(9999, 12, 30),
			end:   date(10000, 1, 2),
			want:  []time.Time{date(9999, 12, 30), date(9999, 12, 31), date(10000, 1, 1), date(10000, 1, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBooking(t, tt.start, tt.end)
			assert.Equal(t, tt.want, slices.Collect(b.Days()))
		})
	}
}

func TestDaysLengthMatchesRange(t *testing.T) {
	b := testBooking(t, date(2025, 1, 1), date(2025, 12, 31))

	days := slices.Collect(b.Days())

	require.Len(t, days, 365)
	assert.Equal(t, 365, b.Len())
	assert.Equal(t, b.Start(), days[0])
	assert.Equal(t, b.End(), days[len(days)-1])
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2025, 8, 10), date(2025, 8, 10), 1},
		{"leap year", date(2024, 1, 1), date(2024, 12, 31), 366},
		{"longer than a time.Duration", date(1700, 1, 1), date(2025, 1, 1), 118705},
		{"whole calendar range", time.Time{}, date(9999, 12, 31), 3652059},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBooking(t, tt.start, tt.end)
			assert.Equal(t, tt.want, b.Len())
		})
	}
}

func TestLenMatchesDaysOverCenturies(t *testing.T) {
	b := testBooking(t, date(1700, 1, 1), date(2025, 1, 1))

	n := 0
	for range b.Days() {
		n++
	}
	assert.Equal(t, b.Len(), n)
}

func TestDaysRestartable(t *testing.T) {
	b := testBooking(t, date(2025, 8, 1), date(2025, 8, 5))

	first := slices.Collect(b.Days())
	second := slices.Collect(b.Days())
	assert.Equal(t, first, second)

	// Stopping early does not affect the next enumeration.
	for day := range b.Days() {
		assert.Equal(t, date(2025, 8, 1), day)
		break
	}
	assert.Equal(t, first, slices.Collect(b.Days()))
}

func TestZeroBookingIsFirstDay(t *testing.T) {
	assert.Equal(t, []time.Time{time.Time{}}, slices.Collect(Booking{}.Days()))
	assert.Equal(t, 1, Booking{}.Len())
}

func TestString(t *testing.T) {
	b := testBooking(t, date(2025, 8, 1), date(2025, 8, 5))
	assert.Equal(t, "2025-08-01 to 2025-08-05", b.String())
}
