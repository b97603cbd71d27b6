package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Flyrell/bookrange/internal/booking"
	"github.com/Flyrell/bookrange/internal/bookingfile"
	"github.com/Flyrell/bookrange/internal/calendar"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bookingInput holds the flags that select where bookings come from.
type bookingInput struct {
	file   string
	ranges []string
}

// bookingSet is the resolved list of bookings plus an optional title.
type bookingSet struct {
	title    string
	bookings []booking.Booking
}

// sourceDeps abstracts terminal access so tests can drive interactive entry.
type sourceDeps struct {
	stdinIsTTY func() bool
	prompts    PromptKit
}

func defaultSourceDeps() sourceDeps {
	return sourceDeps{
		stdinIsTTY: func() bool { return isatty.IsTerminal(os.Stdin.Fd()) },
		prompts:    NewPromptKit(),
	}
}

var bookingSourceStrFlags = []StringFlag{
	{Name: "file", Shorthand: "f", Usage: "bookings file (YAML or JSON, default: $BOOKRANGE_FILE)"},
}

var bookingSourceArrFlags = []StringArrayFlag{
	{Name: "booking", Shorthand: "b", Usage: "booking range as <start>..<end>, e.g. 2025-08-01..2025-08-03 (repeatable)"},
}

// readBookingInput reads the --file and --booking flags from cmd.
func readBookingInput(cmd *cobra.Command) bookingInput {
	file, _ := cmd.Flags().GetString("file")
	ranges, _ := cmd.Flags().GetStringArray("booking")
	return bookingInput{file: file, ranges: ranges}
}

// loadBookings resolves bookings from a file, --booking flags, or an
// interactive prompt, in that order of preference. A file and --booking
// flags may be combined.
func loadBookings(in bookingInput, deps sourceDeps) (bookingSet, error) {
	if in.file == "" && len(in.ranges) == 0 {
		in.file = appConfig.File
	}

	var set bookingSet
	if in.file != "" {
		f, err := bookingfile.Read(in.file)
		if err != nil {
			return bookingSet{}, err
		}
		set.title = f.Title
		set.bookings = append(set.bookings, f.Bookings...)
		logger.Debug("bookings file read", zap.String("path", in.file), zap.Int("count", len(f.Bookings)))
	}

	for _, r := range in.ranges {
		b, err := parseRange(r)
		if err != nil {
			return bookingSet{}, err
		}
		set.bookings = append(set.bookings, b)
	}

	if in.file != "" || len(in.ranges) > 0 {
		return set, nil
	}

	if deps.stdinIsTTY == nil || !deps.stdinIsTTY() {
		return bookingSet{}, fmt.Errorf("no bookings given (use --file or --booking)")
	}

	bookings, err := promptBookings(deps.prompts)
	if err != nil {
		return bookingSet{}, err
	}
	logger.Debug("bookings entered interactively", zap.Int("count", len(bookings)))
	return bookingSet{bookings: bookings}, nil
}

// parseRange parses "<start>..<end>" or a single "<day>" into a Booking.
// Each side accepts any expression understood by calendar.ParseDate.
func parseRange(s string) (booking.Booking, error) {
	startStr, endStr, found := strings.Cut(s, "..")
	if !found {
		endStr = startStr
	}

	start, err := calendar.ParseDate(startStr)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking %q: %w", s, err)
	}
	end, err := calendar.ParseDate(endStr)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking %q: %w", s, err)
	}

	b, err := booking.New(start, end)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("booking %q: %w", s, err)
	}
	return b, nil
}

// promptBookings asks for bookings one at a time until the user declines to
// add another.
func promptBookings(kit PromptKit) ([]booking.Booking, error) {
	var bookings []booking.Booking
	for {
		startStr, err := kit.Prompt("Start date (e.g. 2025-08-01, aug 1, today)")
		if err != nil {
			return nil, err
		}
		endStr, err := kit.Prompt("End date (inclusive)")
		if err != nil {
			return nil, err
		}

		b, err := parseRange(strings.TrimSpace(startStr) + ".." + strings.TrimSpace(endStr))
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)

		more, err := kit.Confirm("Add another booking?")
		if err != nil {
			return nil, err
		}
		if !more {
			return bookings, nil
		}
	}
}
