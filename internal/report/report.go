package report

import (
	"time"

	"github.com/Flyrell/bookrange/internal/booking"
	"github.com/Flyrell/bookrange/internal/calendar"
	"github.com/shopspring/decimal"
)

// Report holds the daily counts for one month and the merged ranges of the
// whole booking set.
type Report struct {
	Title       string
	Year        int
	Month       time.Month
	DaysInMonth int
	Counts      map[int]int // day-of-month -> overlapping bookings
	Merged      []booking.Booking
	Bookings    int
	BookedDays  int
	PeakDay     int // earliest day with the highest count, 0 if the month is empty
	PeakCount   int
	Occupancy   decimal.Decimal // percent of days with at least one booking
}

// Build computes the report for the given month.
func Build(title string, bookings []booking.Booking, year int, month time.Month) Report {
	r := Report{
		Title:       title,
		Year:        year,
		Month:       month,
		DaysInMonth: calendar.DaysIn(year, month),
		Counts:      booking.CountByDay(bookings, year, month),
		Merged:      booking.Merge(bookings),
		Bookings:    len(bookings),
	}

	for day := 1; day <= r.DaysInMonth; day++ {
		n := r.Counts[day]
		if n > 0 {
			r.BookedDays++
		}
		if n > r.PeakCount {
			r.PeakCount = n
			r.PeakDay = day
		}
	}

	r.Occupancy = decimal.NewFromInt(int64(r.BookedDays)).
		Div(decimal.NewFromInt(int64(r.DaysInMonth))).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	return r
}

// MonthStart returns the first day of the report's month.
func (r Report) MonthStart() time.Time {
	return time.Date(r.Year, r.Month, 1, 0, 0, 0, 0, time.UTC)
}
