package utils

import "testing"

func TestToArabicDigits(t *testing.T) {
	got := ToArabicDigits("ORD-105 / 23:45")
	want := "ORD-١٠٥ / ٢٣:٤٥"
	if got != want {
		t.Fatalf("ToArabicDigits = %q, want %q", got, want)
	}
}

func TestFormatArabicNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "٠"},
		{5, "٥"},
		{1234, "١٬٢٣٤"},
		{1234567, "١٬٢٣٤٬٥٦٧"},
		{1234.5, "١٬٢٣٤.٥٠"},
	}
	for _, tc := range cases {
		if got := FormatArabicNumber(tc.in); got != tc.want {
			t.Fatalf("FormatArabicNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatArabicCount(t *testing.T) {
	if got := FormatArabicCount(42); got != "٤٢" {
		t.Fatalf("FormatArabicCount(42) = %q", got)
	}
}
