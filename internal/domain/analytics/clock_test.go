package analytics

import (
	"math"
	"testing"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"00:00:00", 0, true},
		{"9:30", 9.5, true},
		{"09:30:00", 9.5, true},
		{"9:15:00", 9.25, true},
		{"17:30:00", 17.5, true},
		{"23:59:59", 23 + 59.0/60 + 59.0/3600, true},
		{"7", 7, true},
		{"", 0, false},
		{"N/A", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseClockTime(c.input)
		if ok != c.ok {
			t.Errorf("ParseClockTime(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ParseClockTime(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseClockTime_Monotonic(t *testing.T) {
	inputs := []string{"00:00:00", "06:15:30", "09:29:59", "09:30:00", "12:00:00", "17:00:01", "23:59:59"}
	prev := -1.0
	for _, in := range inputs {
		got, ok := ParseClockTime(in)
		if !ok {
			t.Fatalf("ParseClockTime(%q) unexpectedly missing", in)
		}
		if got <= prev {
			t.Errorf("ParseClockTime(%q) = %v, not greater than previous %v", in, got, prev)
		}
		prev = got
	}
}

func TestParseClockTime_MalformedIsNaN(t *testing.T) {
	got, ok := ParseClockTime("9:xx:00")
	if !ok {
		t.Fatal("malformed time should still count as recorded")
	}
	if !math.IsNaN(got) {
		t.Errorf("ParseClockTime(\"9:xx:00\") = %v, want NaN", got)
	}
}

func TestIsLate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"N/A", false},
		{"00:00:00", false},
		{"09:29:59", false},
		{"09:30:00", false}, // exactly on time
		{"09:30:01", true},
		{"10:00:00", true},
		{"9:xx:00", false}, // NaN never compares greater
	}
	for _, c := range cases {
		if got := IsLate(c.input); got != c.want {
			t.Errorf("IsLate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}
