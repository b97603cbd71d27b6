package cli

import (
	"fmt"

	"github.com/Flyrell/bookrange/internal/booking"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mergeCmd = LeafCommand{
	Use:   "merge",
	Short: "Merge overlapping and back-to-back bookings into continuous ranges",
	Example: `  bookrange merge -f bookings.yaml
  bookrange merge -b "aug 1..aug 3" -b "aug 4..aug 6"`,
	Args:     cobra.NoArgs,
	StrFlags: bookingSourceStrFlags,
	ArrFlags: bookingSourceArrFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(cmd, readBookingInput(cmd), defaultSourceDeps())
	},
}.Build()

func runMerge(cmd *cobra.Command, in bookingInput, deps sourceDeps) error {
	set, err := loadBookings(in, deps)
	if err != nil {
		return err
	}

	merged := booking.Merge(set.bookings)
	logger.Debug("bookings merged", zap.Int("bookings", len(set.bookings)), zap.Int("ranges", len(merged)))

	w := cmd.OutOrStdout()
	if len(merged) == 0 {
		_, _ = fmt.Fprintln(w, Warning("No bookings found."))
		return nil
	}

	for _, m := range merged {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Primary(m.String()), Silent(fmt.Sprintf("(%d day(s))", m.Len())))
	}
	_, _ = fmt.Fprintln(w, Text(fmt.Sprintf("%d booking(s) merged into %d range(s)", len(set.bookings), len(merged))))
	return nil
}
