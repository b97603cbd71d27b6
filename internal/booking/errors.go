package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/Flyrell/bookrange/internal/calendar"
)

// ErrInvalidRange is matched by every *InvalidRangeError via errors.Is.
var ErrInvalidRange = errors.New("invalid booking range")

// InvalidRangeError is returned by New when the end day is before the start day.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: end %s is before start %s",
		ErrInvalidRange, e.End.Format(calendar.DateLayout), e.Start.Format(calendar.DateLayout))
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
