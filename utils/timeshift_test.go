package utils

import (
	"fmt"
	"testing"
	"time"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"02:30 م", "14:30"},
		{"12:00 ص", "00:00"},
		{"12:00 م", "12:00"},
		{"09:15 ص", "09:15"},
		{"02:30 PM", "14:30"},
		{"02:30 pm", "14:30"},
		{"12:00 AM", "00:00"},
		{"14:30", "14:30"},
		{"7:05", "07:05"},
	}
	for _, tc := range cases {
		got, err := To24Hour(tc.in)
		if err != nil {
			t.Fatalf("To24Hour(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("To24Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTo24HourMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "99:00", "10:99", "10", "13:00 م"} {
		if _, err := To24Hour(in); err == nil {
			t.Fatalf("To24Hour(%q): expected error", in)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 ص"},
		{"13:15", "01:15 م"},
		{"12:00", "12:00 م"},
		{"11:59", "11:59 ص"},
		{"23:45", "11:45 م"},
	}
	for _, tc := range cases {
		got, err := To12Hour(tc.in)
		if err != nil {
			t.Fatalf("To12Hour(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("To12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoundTripStability(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		clock := fmt.Sprintf("%02d:30", hour)
		twelve, err := To12Hour(clock)
		if err != nil {
			t.Fatalf("To12Hour(%q): %v", clock, err)
		}
		back, err := To24Hour(twelve)
		if err != nil {
			t.Fatalf("To24Hour(%q): %v", twelve, err)
		}
		if back != clock {
			t.Fatalf("round trip %q -> %q -> %q", clock, twelve, back)
		}
		again, err := To12Hour(back)
		if err != nil {
			t.Fatalf("To12Hour(%q): %v", back, err)
		}
		if again != twelve {
			t.Fatalf("12h round trip %q -> %q", twelve, again)
		}
	}
}

func TestBackendShiftRoundTrip(t *testing.T) {
	//any hour not within two hours of the midnight rollover
	for _, clock := range []string{"09:00", "12:30", "15:45", "21:59", "02:00"} {
		stored, err := ShiftForBackend(clock)
		if err != nil {
			t.Fatalf("ShiftForBackend(%q): %v", clock, err)
		}
		shown, err := ShiftFromBackend(stored)
		if err != nil {
			t.Fatalf("ShiftFromBackend(%q): %v", stored, err)
		}
		if shown != clock {
			t.Fatalf("shift round trip %q -> %q -> %q", clock, stored, shown)
		}
	}
}

func TestShiftWrapsWithoutDayBorrow(t *testing.T) {
	//known gap carried from the source: 00:30 minus two hours has no
	//day to borrow from and wraps to the evening
	got, err := ShiftForBackend("00:30")
	if err != nil {
		t.Fatalf("ShiftForBackend: %v", err)
	}
	if got != "22:30" {
		t.Fatalf("ShiftForBackend(00:30) = %q, want 22:30", got)
	}
}

func TestShiftInstant(t *testing.T) {
	local := time.Date(2025, 3, 1, 1, 15, 0, 0, time.UTC)
	stored := ShiftInstantForAPI(local)
	if stored != "2025-02-28T23:15:00" {
		t.Fatalf("ShiftInstantForAPI = %q", stored)
	}

	back, err := ShiftInstantFromAPI(stored)
	if err != nil {
		t.Fatalf("ShiftInstantFromAPI: %v", err)
	}
	if !back.Equal(local) {
		t.Fatalf("instant round trip %v -> %v", local, back)
	}
}

func TestShiftInstantMalformed(t *testing.T) {
	if _, err := ShiftInstantFromAPI("not-a-date"); err == nil {
		t.Fatalf("expected error for malformed instant")
	}
}
