package quote

import (
	"testing"
	"time"
)

func TestForDayUsesDayOfMonthModulo(t *testing.T) {
	all := quotes
	cases := []struct {
		day  int
		want string
	}{
		{1, all[1]},
		{8, all[0]},
		{9, all[1]},
		{31, all[31%len(all)]},
	}
	for _, tc := range cases {
		got := ForDay(time.Date(2026, 1, tc.day, 23, 59, 0, 0, time.UTC))
		if got != tc.want {
			t.Fatalf("day %d: got %q, want %q", tc.day, got, tc.want)
		}
	}
}

func TestForDayStableWithinDay(t *testing.T) {
	morning := ForDay(time.Date(2026, 3, 5, 6, 0, 0, 0, time.UTC))
	night := ForDay(time.Date(2026, 3, 5, 22, 0, 0, 0, time.UTC))
	if morning != night {
		t.Fatalf("quote changed within a day: %q vs %q", morning, night)
	}
}
