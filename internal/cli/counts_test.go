package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCounts(in bookingInput, monthFlag, yearFlag string) (string, error) {
	stdout := new(bytes.Buffer)
	cmd := countsCmd
	cmd.SetOut(stdout)

	now := time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)
	err := runCounts(cmd, in, nonInteractive(), monthFlag, yearFlag, now)
	return stdout.String(), err
}

func TestCountsAugust(t *testing.T) {
	path := writeBookingsFile(t, augustBookingsYAML)

	stdout, err := execCounts(bookingInput{file: path}, "8", "2025")

	require.NoError(t, err)
	assert.Contains(t, stdout, "August 2025")
	assert.Contains(t, stdout, "8/1: 1 booking(s)\n")
	assert.Contains(t, stdout, "8/2: 2 booking(s)\n")
	assert.Contains(t, stdout, "8/3: 2 booking(s)\n")
	assert.Contains(t, stdout, "8/5: 1 booking(s)\n")
	assert.Contains(t, stdout, "8/6: 0 booking(s)\n")
	assert.Contains(t, stdout, "8/12: 1 booking(s)\n")
	assert.Contains(t, stdout, "8/31: 0 booking(s)\n")
	assert.NotContains(t, stdout, "8/32")
}

func TestCountsDefaultsToCurrentMonth(t *testing.T) {
	path := writeBookingsFile(t, augustBookingsYAML)

	stdout, err := execCounts(bookingInput{file: path}, "", "")

	require.NoError(t, err)
	assert.Contains(t, stdout, "August 2025")
}

func TestCountsOtherMonth(t *testing.T) {
	stdout, err := execCounts(bookingInput{ranges: []string{"2024-01-30..2024-02-02"}}, "2", "2024")

	require.NoError(t, err)
	assert.Contains(t, stdout, "2/1: 1 booking(s)\n")
	assert.Contains(t, stdout, "2/2: 1 booking(s)\n")
	assert.Contains(t, stdout, "2/29: 0 booking(s)\n")
	assert.Equal(t, 30, strings.Count(stdout, "\n"))
}

func TestCountsEmptyFile(t *testing.T) {
	path := writeBookingsFile(t, "bookings: []\n")

	stdout, err := execCounts(bookingInput{file: path}, "8", "2025")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No bookings found.")
	assert.Contains(t, stdout, "8/1: 0 booking(s)")
}

func TestCountsInvalidMonth(t *testing.T) {
	_, err := execCounts(bookingInput{ranges: []string{"2025-08-01"}}, "13", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --month")
}

func TestCountsInvalidBooking(t *testing.T) {
	_, err := execCounts(bookingInput{ranges: []string{"2025-01-05..2025-01-03"}}, "1", "2025")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "end 2025-01-03 is before start 2025-01-05")
}
