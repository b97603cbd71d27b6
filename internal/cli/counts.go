package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Flyrell/bookrange/internal/booking"
	"github.com/Flyrell/bookrange/internal/calendar"
	"github.com/Flyrell/bookrange/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var countsCmd = LeafCommand{
	Use:   "counts",
	Short: "Show how many bookings overlap each day of a month",
	Example: `  bookrange counts -f bookings.yaml -m 8 -y 2025
  bookrange counts -b 2025-08-01..2025-08-03 -b 2025-08-02..2025-08-05`,
	Args:     cobra.NoArgs,
	StrFlags: slices.Concat(bookingSourceStrFlags, monthYearStrFlags),
	ArrFlags: bookingSourceArrFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		monthFlag, _ := cmd.Flags().GetString("month")
		yearFlag, _ := cmd.Flags().GetString("year")

		return runCounts(cmd, readBookingInput(cmd), defaultSourceDeps(), monthFlag, yearFlag, time.Now())
	},
}.Build()

func runCounts(cmd *cobra.Command, in bookingInput, deps sourceDeps, monthFlag, yearFlag string, now time.Time) error {
	year, month, err := parseMonthYearFlags(monthFlag, yearFlag, now)
	if err != nil {
		return err
	}

	set, err := loadBookings(in, deps)
	if err != nil {
		return err
	}

	counts := booking.CountByDay(set.bookings, year, month)
	logger.Debug("daily counts computed",
		zap.Int("bookings", len(set.bookings)),
		zap.Int("year", year),
		zap.Stringer("month", month),
	)

	w := cmd.OutOrStdout()
	if len(set.bookings) == 0 {
		_, _ = fmt.Fprintln(w, Warning("No bookings found."))
	}

	var b strings.Builder
	b.WriteString(Info(fmt.Sprintf("=== Daily Booking Counts: %s %d ===", month, year)) + "\n")
	for day := 1; day <= calendar.DaysIn(year, month); day++ {
		b.WriteString(Occupied(counts[day], report.CountLine(int(month), day, counts[day])) + "\n")
	}

	_, err = fmt.Fprint(w, b.String())
	return err
}
