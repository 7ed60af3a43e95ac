package scheduling

import "testing"

func TestProjectEndTime(t *testing.T) {
	cases := []struct {
		start   string
		minutes int
		want    string
	}{
		{"14:00", 45, "14:45"},
		{"14:50", 20, "15:10"}, // hour boundary
		{"09:00", 90, "10:30"},
		{"23:30", 45, "00:15"}, // midnight wrap
		{"10:15", 0, "10:15"},
	}
	for _, tc := range cases {
		got, err := ProjectEndTime(tc.start, tc.minutes)
		if err != nil {
			t.Fatalf("ProjectEndTime(%s, %d) error: %v", tc.start, tc.minutes, err)
		}
		if got != tc.want {
			t.Fatalf("ProjectEndTime(%s, %d) = %s, want %s", tc.start, tc.minutes, got, tc.want)
		}
	}
}

func TestProjectEndTimeInvalidClock(t *testing.T) {
	for _, bad := range []string{"", "25:00", "14:75", "14h00", "9"} {
		if _, err := ProjectEndTime(bad, 30); err == nil {
			t.Fatalf("ProjectEndTime(%q) should fail", bad)
		}
	}
}
