package catalog

import (
	"testing"
	"time"
)

func TestTestDates(t *testing.T) {
	tests := []struct {
		name  string
		now   string
		want1 string
		want2 string
	}{
		{
			name:  "30th day lands on a Friday",
			now:   "2025-01-01",
			want1: "2025-01-31",
			want2: "2025-02-09",
		},
		{
			name:  "30th day is a Saturday, advance to next Friday",
			now:   "2025-01-02",
			want1: "2025-02-07",
			want2: "2025-02-16",
		},
		{
			name:  "30th day is a Sunday",
			now:   "2025-01-03",
			want1: "2025-02-07",
			want2: "2025-02-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.Parse("2006-01-02", tt.now)
			if err != nil {
				t.Fatal(err)
			}

			got1, got2 := TestDates(now)
			if got1 != tt.want1 {
				t.Errorf("departure_date_1 = %s, want %s", got1, tt.want1)
			}
			if got2 != tt.want2 {
				t.Errorf("departure_date_2 = %s, want %s", got2, tt.want2)
			}
		})
	}
}

func TestTestDatesWeekdays(t *testing.T) {
	// Whatever the starting day, the first date is a Friday and the second
	// the Sunday nine days later.
	start, _ := time.Parse("2006-01-02", "2025-03-01")
	for day := 0; day < 14; day++ {
		now := start.AddDate(0, 0, day)
		got1, got2 := TestDates(now)

		d1, err := time.Parse("2006-01-02", got1)
		if err != nil {
			t.Fatal(err)
		}
		d2, err := time.Parse("2006-01-02", got2)
		if err != nil {
			t.Fatal(err)
		}

		if d1.Weekday() != time.Friday {
			t.Errorf("now=%s: departure_date_1 %s is %s, want Friday", now.Format("2006-01-02"), got1, d1.Weekday())
		}
		if d2.Weekday() != time.Sunday {
			t.Errorf("now=%s: departure_date_2 %s is %s, want Sunday", now.Format("2006-01-02"), got2, d2.Weekday())
		}
		if d2.Sub(d1) != 9*24*time.Hour {
			t.Errorf("now=%s: dates %s and %s are not 9 days apart", now.Format("2006-01-02"), got1, got2)
		}
		if d1.Sub(now) < 30*24*time.Hour {
			t.Errorf("now=%s: departure_date_1 %s is closer than 30 days", now.Format("2006-01-02"), got1)
		}
	}
}
