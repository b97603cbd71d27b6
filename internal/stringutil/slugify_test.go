package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "bookings", "bookings"},
		{"title case", "Seaside Apartment", "seaside-apartment"},
		{"punctuation", "Room #4 (north wing)", "room-4-north-wing"},
		{"repeated separators", "cabin -- lake", "cabin-lake"},
		{"leading and trailing", "  ...loft!  ", "loft"},
		{"accents folded", "Café Ñandú", "cafe-nandu"},
		{"digits kept", "Unit 12B", "unit-12b"},
		{"non-latin dropped", "民宿 Kyoto", "kyoto"},
		{"empty", "", ""},
		{"only symbols", "***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
