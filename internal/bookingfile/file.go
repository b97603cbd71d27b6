package bookingfile

import (
	"fmt"
	"os"
	"time"

	"github.com/Flyrell/bookrange/internal/booking"
	"github.com/Flyrell/bookrange/internal/calendar"
	"gopkg.in/yaml.v3"
)

// Record is a single booking as stored in a bookings file.
type Record struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

// Document is the on-disk shape of a bookings file. JSON files with the same
// keys decode as well since YAML is a superset of JSON.
type Document struct {
	Title    string   `yaml:"title,omitempty" json:"title,omitempty"`
	Bookings []Record `yaml:"bookings" json:"bookings"`
}

// File is a decoded and validated bookings file.
type File struct {
	Path     string
	Title    string
	Bookings []booking.Booking
}

// Read loads and validates the bookings file at path.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bookings file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes a bookings document and converts each record into a Booking.
// The first invalid record fails the whole document.
func Parse(data []byte) (*File, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid bookings file: %w", err)
	}

	bookings := make([]booking.Booking, 0, len(doc.Bookings))
	for i, r := range doc.Bookings {
		b, err := r.Booking()
		if err != nil {
			return nil, fmt.Errorf("booking #%d: %w", i+1, err)
		}
		bookings = append(bookings, b)
	}

	return &File{Title: doc.Title, Bookings: bookings}, nil
}

// Booking converts the record into a validated Booking.
func (r Record) Booking() (booking.Booking, error) {
	start, err := parseDay(r.Start)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := parseDay(r.End)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("invalid end: %w", err)
	}
	return booking.New(start, end)
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	return time.Parse(calendar.DateLayout, s)
}
