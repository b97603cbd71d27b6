package cli

import (
	"io"
	"os"
	"time"

	"github.com/Flyrell/bookrange/internal/booking"
	"github.com/Flyrell/bookrange/internal/report"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// reportModel is the interactive month browser. Moving between months
// rebuilds the report from the same booking set.
type reportModel struct {
	title      string
	bookings   []booking.Booking
	data       report.Report
	termWidth  int
	termHeight int
}

func newReportModel(set bookingSet, year int, month time.Month) reportModel {
	return reportModel{
		title:      set.title,
		bookings:   set.bookings,
		data:       report.Build(set.title, set.bookings, year, month),
		termWidth:  80,
		termHeight: 24,
	}
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m = m.shiftMonth(-1)
		case "right", "l":
			m = m.shiftMonth(1)
		case "up", "k":
			m = m.shiftMonth(-12)
		case "down", "j":
			m = m.shiftMonth(12)
		}
	}
	return m, nil
}

// shiftMonth moves the browser by delta months, wrapping across years.
func (m reportModel) shiftMonth(delta int) reportModel {
	first := time.Date(m.data.Year, m.data.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	m.data = report.Build(m.title, m.bookings, first.Year(), first.Month())
	return m
}

func runReportTable(cmd *cobra.Command, set bookingSet, year int, month time.Month) error {
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static report
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticReport(out, report.Build(set.title, set.bookings, year, month))
	}

	p := tea.NewProgram(newReportModel(set, year, month), tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func printStaticReport(w io.Writer, data report.Report) error {
	return report.RenderText(w, data)
}
