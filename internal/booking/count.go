package booking

import (
	"time"

	"github.com/Flyrell/bookrange/internal/calendar"
)

// CountByDay returns, for every day of the given month, how many bookings
// include that day. All days 1..DaysIn(year, month) are present as keys.
// Days of a booking outside the month are ignored.
func CountByDay(bookings []Booking, year int, month time.Month) map[int]int {
	daysInMonth := calendar.DaysIn(year, month)

	counts := make(map[int]int, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		counts[day] = 0
	}

	for _, b := range bookings {
		for day := range b.Days() {
			if day.Year() == year && day.Month() == month {
				counts[day.Day()]++
			}
		}
	}

	return counts
}
