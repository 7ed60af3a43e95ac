package utils

import "testing"

func TestFormatCLP(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{28000, "$28.000"},
		{1234567, "$1.234.567"},
		{-5000, "-$5.000"},
	}
	for _, tc := range cases {
		if got := FormatCLP(tc.in); got != tc.want {
			t.Fatalf("FormatCLP(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
