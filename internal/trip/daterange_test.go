package trip

import "testing"

func TestTripDays_WholeRange(t *testing.T) {
	if got := TripDays("2026-06-12", "2026-06-15"); got != 3 {
		t.Errorf("expected 3 days, got %d", got)
	}
	if got := TripDays("2026-06-12", "2026-06-19"); got != 7 {
		t.Errorf("expected 7 days, got %d", got)
	}
}

func TestTripDays_ReversedDates(t *testing.T) {
	if got := TripDays("2026-06-15", "2026-06-12"); got != 3 {
		t.Errorf("expected 3 days for reversed range, got %d", got)
	}
}

func TestTripDays_SameDay(t *testing.T) {
	if got := TripDays("2026-06-12", "2026-06-12"); got != 1 {
		t.Errorf("expected floor of 1 day, got %d", got)
	}
}

func TestTripDays_MissingDates(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"2026-06-12", ""},
		{"", "2026-06-15"},
	}
	for _, c := range cases {
		if got := TripDays(c[0], c[1]); got != DefaultTripDays {
			t.Errorf("TripDays(%q, %q) = %d, expected default %d", c[0], c[1], got, DefaultTripDays)
		}
	}
}

func TestTripDays_MalformedDates(t *testing.T) {
	if got := TripDays("12/06/2026", "2026-06-15"); got != DefaultTripDays {
		t.Errorf("expected default for malformed date, got %d", got)
	}
}
