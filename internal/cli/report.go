package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/Flyrell/bookrange/internal/report"
	"github.com/Flyrell/bookrange/internal/stringutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportExtensions = map[string]string{
	"pdf":  "pdf",
	"md":   "md",
	"html": "html",
}

var reportCmd = LeafCommand{
	Use:   "report",
	Short: "Show daily counts and merged ranges for a month",
	Example: `  bookrange report -f bookings.yaml
  bookrange report -f bookings.yaml -m 8 --export pdf`,
	Args: cobra.NoArgs,
	StrFlags: slices.Concat(bookingSourceStrFlags, monthYearStrFlags, []StringFlag{
		{Name: "export", Shorthand: "e", Usage: "export format (pdf, md, html)"},
		{Name: "output", Shorthand: "o", Usage: "export file path (default: <title>-<year>-month-<MM>.<ext>)"},
	}),
	ArrFlags: bookingSourceArrFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		monthFlag, _ := cmd.Flags().GetString("month")
		yearFlag, _ := cmd.Flags().GetString("year")
		exportFlag, _ := cmd.Flags().GetString("export")
		outputFlag, _ := cmd.Flags().GetString("output")

		return runReport(cmd, readBookingInput(cmd), defaultSourceDeps(), monthFlag, yearFlag, exportFlag, outputFlag, time.Now())
	},
}.Build()

func runReport(
	cmd *cobra.Command,
	in bookingInput,
	deps sourceDeps,
	monthFlag, yearFlag, exportFlag, outputFlag string,
	now time.Time,
) error {
	year, month, err := parseMonthYearFlags(monthFlag, yearFlag, now)
	if err != nil {
		return err
	}

	ext := ""
	if exportFlag != "" {
		var ok bool
		if ext, ok = exportExtensions[exportFlag]; !ok {
			return fmt.Errorf("unsupported export format %q (supported: pdf, md, html)", exportFlag)
		}
	}

	set, err := loadBookings(in, deps)
	if err != nil {
		return err
	}

	if exportFlag == "" {
		return runReportTable(cmd, set, year, month)
	}

	data := report.Build(set.title, set.bookings, year, month)

	outputPath := outputFlag
	if outputPath == "" {
		outputPath = exportFileName(set.title, year, month, ext)
	}

	if err := writeExport(exportFlag, data, outputPath); err != nil {
		return err
	}
	logger.Debug("report exported", zap.String("format", exportFlag), zap.String("path", outputPath))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported report to %s\n", outputPath)
	return nil
}

// exportFileName builds "<slug>-<year>-month-<MM>.<ext>" from the bookings title.
func exportFileName(title string, year int, month time.Month, ext string) string {
	slug := stringutil.Slugify(title)
	if slug == "" {
		slug = "bookings"
	}
	return fmt.Sprintf("%s-%d-month-%02d.%s", slug, year, month, ext)
}

func writeExport(format string, data report.Report, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if format == "pdf" {
		return renderExportPDF(data, outputPath)
	}

	switch format {
	case "md":
		return renderToFile(outputPath, func(w io.Writer) error { return report.RenderMarkdown(w, data) })
	case "html":
		return renderToFile(outputPath, func(w io.Writer) error { return report.RenderHTML(w, data) })
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// renderToFile writes render's output to path. The file is removed when
// rendering or closing fails.
func renderToFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = render(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
