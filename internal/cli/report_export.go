package cli

import (
	"fmt"
	"strconv"

	"github.com/Flyrell/bookrange/internal/calendar"
	"github.com/Flyrell/bookrange/internal/report"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderExportPDF generates a PDF occupancy sheet from the report and saves it
// to the given path.
func renderExportPDF(data report.Report, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	title := data.Title
	if title == "" {
		title = "Bookings"
	}

	// Document header
	m.AddRow(14,
		text.NewCol(12, title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s %d  -  %d of %d days booked (%s%%)",
			data.Month, data.Year, data.BookedDays, data.DaysInMonth, data.Occupancy.StringFixed(1)), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	// Daily counts
	m.AddRow(8,
		text.NewCol(12, "Daily Booking Counts", props.Text{
			Style: fontstyle.Bold,
			Size:  11,
			Color: &pdfHeaderColor,
		}),
	)
	for day := 1; day <= data.DaysInMonth; day++ {
		d := data.MonthStart().AddDate(0, 0, day-1)
		count := data.Counts[day]

		rowText := props.Text{Size: 9}
		if count == 0 {
			rowText.Color = &pdfMutedColor
		}
		countText := rowText
		countText.Align = align.Right
		if day == data.PeakDay {
			countText.Style = fontstyle.Bold
		}

		m.AddRow(5,
			text.NewCol(6, "  "+d.Format(calendar.DateLayout), rowText),
			text.NewCol(3, d.Weekday().String(), rowText),
			text.NewCol(3, strconv.Itoa(count), countText),
		)
	}

	m.AddRow(4) // spacer

	// Merged ranges
	m.AddRow(8,
		text.NewCol(12, "Merged Booking Ranges", props.Text{
			Style: fontstyle.Bold,
			Size:  11,
			Color: &pdfHeaderColor,
		}),
	)
	for _, r := range data.Merged {
		m.AddRow(6,
			text.NewCol(9, "  "+r.String(), props.Text{Size: 9}),
			text.NewCol(3, fmt.Sprintf("%d day(s)", r.Len()), props.Text{
				Size:  9,
				Align: align.Right,
			}),
		)
	}

	// Footer
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Bookings", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, strconv.Itoa(data.Bookings), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
