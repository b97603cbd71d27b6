package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/Flyrell/bookrange/internal/calendar"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	countsHeading = "=== Daily Booking Counts (Including Overlaps) ==="
	mergedHeading = "=== Merged Booking Ranges (No Double-Count) ==="
)

// CountLine formats a single day of the counts section, e.g. "8/2: 2 booking(s)".
func CountLine(month, day, count int) string {
	return fmt.Sprintf("%d/%d: %d booking(s)", month, day, count)
}

// RenderText writes the plain-text report.
func RenderText(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString(countsHeading + "\n")
	for day := 1; day <= r.DaysInMonth; day++ {
		b.WriteString(CountLine(int(r.Month), day, r.Counts[day]) + "\n")
	}

	b.WriteString("\n" + mergedHeading + "\n")
	for _, m := range r.Merged {
		b.WriteString(m.String() + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderMarkdown writes the report as a Markdown document.
func RenderMarkdown(w io.Writer, r Report) error {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "Bookings"
	}
	fmt.Fprintf(&b, "# %s: %s %d\n\n", title, r.Month, r.Year)
	fmt.Fprintf(&b, "%d booking(s), %d of %d days booked (%s%%)", r.Bookings, r.BookedDays, r.DaysInMonth, r.Occupancy.StringFixed(1))
	if r.PeakDay > 0 {
		fmt.Fprintf(&b, ", peak %d on %s", r.PeakCount, r.MonthStart().AddDate(0, 0, r.PeakDay-1).Format(calendar.DateLayout))
	}
	b.WriteString(".\n\n")

	b.WriteString("## Daily Booking Counts\n\n")
	b.WriteString("| Date | Day | Bookings |\n")
	b.WriteString("|---|---|---:|\n")
	for day := 1; day <= r.DaysInMonth; day++ {
		d := r.MonthStart().AddDate(0, 0, day-1)
		fmt.Fprintf(&b, "| %s | %s | %d |\n", d.Format(calendar.DateLayout), d.Weekday().String()[:3], r.Counts[day])
	}

	b.WriteString("\n## Merged Booking Ranges\n\n")
	if len(r.Merged) == 0 {
		b.WriteString("_No bookings._\n")
	}
	for _, m := range r.Merged {
		fmt.Fprintf(&b, "- %s (%d day(s))\n", m, m.Len())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderHTML writes the Markdown report converted to an HTML fragment.
func RenderHTML(w io.Writer, r Report) error {
	var src bytes.Buffer
	if err := RenderMarkdown(&src, r); err != nil {
		return err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert(src.Bytes(), w); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}
