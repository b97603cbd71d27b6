package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Flyrell/bookrange/internal/booking"
	"github.com/Flyrell/bookrange/internal/report"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 7

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle  = lipgloss.NewStyle().Faint(true)
	emptyStyle   = lipgloss.NewStyle().Faint(true)
	bookedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	peakStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00")).Bold(true).Underline(true)
	weekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

func (m reportModel) View() string {
	return renderCalendar(m.data) + "\n" + footerStyle.Render("←/h prev month  →/l next month  ↑/k prev year  ↓/j next year  q quit") + "\n"
}

// renderCalendar draws the month as a Monday-first grid. Each cell shows the
// day number and, when booked, the number of overlapping bookings.
func renderCalendar(data report.Report) string {
	var b strings.Builder

	title := fmt.Sprintf("--- %s %d ---", data.Month, data.Year)
	if data.Title != "" {
		title = fmt.Sprintf("--- %s: %s %d ---", data.Title, data.Month, data.Year)
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	for i := 0; i < 7; i++ {
		wd := time.Weekday((i + 1) % 7)
		label := padRight(wd.String()[:3], cellWidth)
		if isWeekend(wd) {
			b.WriteString(weekendStyle.Bold(true).Render(label))
		} else {
			b.WriteString(headerStyle.Render(label))
		}
	}
	b.WriteString("\n")

	offset := mondayOffset(data.MonthStart().Weekday())
	b.WriteString(strings.Repeat(" ", offset*cellWidth))

	for day := 1; day <= data.DaysInMonth; day++ {
		count := data.Counts[day]
		label := fmt.Sprintf("%2d", day)
		if count > 0 {
			label += fmt.Sprintf(" x%d", count)
		}
		cell := padRight(label, cellWidth)

		switch {
		case count > 0 && day == data.PeakDay:
			b.WriteString(peakStyle.Render(cell))
		case count > 0:
			b.WriteString(bookedStyle.Render(cell))
		default:
			b.WriteString(emptyStyle.Render(cell))
		}

		if (offset+day)%7 == 0 && day != data.DaysInMonth {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%d of %d days booked (%s%%)",
		data.BookedDays, data.DaysInMonth, data.Occupancy.StringFixed(1))))
	b.WriteString("\n\n")

	ranges := rangesInMonth(data)
	b.WriteString(headerStyle.Render("Merged ranges"))
	b.WriteString("\n")
	if len(ranges) == 0 {
		b.WriteString(emptyStyle.Render("  none this month"))
		b.WriteString("\n")
	}
	for _, r := range ranges {
		b.WriteString("  " + r.String() + "\n")
	}

	return b.String()
}

// rangesInMonth returns the merged ranges that touch the report's month.
func rangesInMonth(data report.Report) []booking.Booking {
	first := data.MonthStart()
	last := first.AddDate(0, 0, data.DaysInMonth-1)

	var out []booking.Booking
	for _, r := range data.Merged {
		if r.End().Before(first) || r.Start().After(last) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// mondayOffset returns how many cells precede wd in a Monday-first week.
func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
