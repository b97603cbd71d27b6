package booking

import "sort"

// Merge collapses bookings into the minimal list of ranges covering the same
// days. Overlapping ranges and back-to-back ranges (one ending the day before
// the next starts) become a single range. The result is sorted by start and
// the input slice is left untouched.
func Merge(bookings []Booking) []Booking {
	if len(bookings) == 0 {
		return []Booking{}
	}

	sorted := make([]Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})

	merged := []Booking{sorted[0]}
	for _, current := range sorted[1:] {
		last := merged[len(merged)-1]
		// Adjacent days count as continuous occupancy.
		if !current.start.After(last.end.AddDate(0, 0, 1)) {
			end := last.end
			if current.end.After(end) {
				end = current.end
			}
			merged[len(merged)-1] = Booking{start: last.start, end: end}
			continue
		}
		merged = append(merged, current)
	}

	return merged
}
