package repo

import (
	"testing"
	"time"
)

func TestFormatTimeSortsChronologically(t *testing.T) {
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	pairs := []struct {
		earlier, later time.Time
	}{
		{base.Add(100 * time.Millisecond), base.Add(120 * time.Millisecond)},
		{base, base.Add(time.Nanosecond)},
		{base.Add(999 * time.Millisecond), base.Add(time.Second)},
	}
	for _, p := range pairs {
		a, b := formatTime(p.earlier), formatTime(p.later)
		if a >= b {
			t.Errorf("formatTime(%v) = %q does not sort before %q", p.earlier, a, b)
		}
	}
}

func TestTimeRoundTrip(t *testing.T) {
	stamps := []time.Time{
		time.Date(2026, 8, 29, 12, 0, 0, 100000000, time.UTC),
		time.Date(2026, 8, 29, 12, 0, 0, 123456789, time.UTC),
		time.Date(2026, 8, 29, 12, 0, 1, 0, time.UTC),
	}
	for _, ts := range stamps {
		if got := parseTime(formatTime(ts)); !got.Equal(ts) {
			t.Errorf("round trip = %v, want %v", got, ts)
		}
	}
}
