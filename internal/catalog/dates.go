package catalog

import "time"

// TestDates derives the two departure dates used to expand URL templates:
// the first Friday at least 30 days after now, and the Sunday closing the
// following week (9 days after that Friday). Both are formatted YYYY-MM-DD.
func TestDates(now time.Time) (string, string) {
	first := now.AddDate(0, 0, 30)
	for first.Weekday() != time.Friday {
		first = first.AddDate(0, 0, 1)
	}
	second := first.AddDate(0, 0, 9)
	return first.Format("2006-01-02"), second.Format("2006-01-02")
}
