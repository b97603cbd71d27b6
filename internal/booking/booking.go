package booking

import (
	"iter"
	"time"

	"github.com/Flyrell/bookrange/internal/calendar"
	"github.com/teambition/rrule-go"
)

// Booking is an inclusive, closed date range at day granularity.
// The zero value is not a valid booking; use New.
type Booking struct {
	start time.Time
	end   time.Time
}

// New creates a Booking spanning start to end inclusive. Both bounds are
// truncated to their calendar day. It fails with *InvalidRangeError when end
// falls before start.
func New(start, end time.Time) (Booking, error) {
	s := calendar.TruncateToDay(start)
	e := calendar.TruncateToDay(end)
	if e.Before(s) {
		return Booking{}, &InvalidRangeError{Start: s, End: e}
	}
	return Booking{start: s, end: e}, nil
}

// Start returns the first day of the booking (UTC midnight).
func (b Booking) Start() time.Time { return b.start }

// End returns the last day of the booking (UTC midnight).
func (b Booking) End() time.Time { return b.end }

// Len returns the number of days covered by the booking.
func (b Booking) Len() int {
	return int((b.end.Unix()-b.start.Unix())/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// rrule reads a zero DTSTART as "now" and stops expanding after year 9999.
var rruleLimit = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// Days returns every calendar day from Start to End inclusive, in ascending
// order. Each call returns a fresh sequence starting at Start.
func (b Booking) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if b.start.IsZero() || b.end.After(rruleLimit) {
			stepDays(b.start, b.end, yield)
			return
		}
		r, err := rrule.NewRRule(rrule.ROption{
			Freq:    rrule.DAILY,
			Dtstart: b.start,
			Until:   b.end,
		})
		if err != nil {
			stepDays(b.start, b.end, yield)
			return
		}
		next := r.Iterator()
		for {
			day, ok := next()
			if !ok || !yield(day) {
				return
			}
		}
	}
}

func stepDays(start, end time.Time, yield func(time.Time) bool) {
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !yield(day) {
			return
		}
	}
}

// String renders the booking as "2006-01-02 to 2006-01-02".
func (b Booking) String() string {
	return b.start.Format(calendar.DateLayout) + " to " + b.end.Format(calendar.DateLayout)
}
