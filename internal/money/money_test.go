package money

import "testing"

func TestParseToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"-150.00", -15000, false},
		{"+20.5", 2050, false},
		{"0", 0, false},
		{"200", 20000, false},
		{"12.345", 1234, false},
		{"12.346", 1235, false},
		{"-0.01", -1, false},
		{".50", 50, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"12a", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseToCents(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseToCents(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "$0.00"},
		{1234, "$12.34"},
		{-15000, "-$150.00"},
		{20000, "$200.00"},
		{123456789, "$1,234,567.89"},
		{-5, "-$0.05"},
	}

	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCentsToDecimal(t *testing.T) {
	if got := CentsToDecimal(-15000); got != "-150.00" {
		t.Errorf("CentsToDecimal(-15000) = %q, want -150.00", got)
	}
	if got := CentsToDecimal(1005); got != "10.05" {
		t.Errorf("CentsToDecimal(1005) = %q, want 10.05", got)
	}
}
