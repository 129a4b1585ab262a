package domain

import (
	"testing"
)

func TestFormatAttendanceRate(t *testing.T) {
	cases := []struct {
		today int64
		total int64
		want  string
	}{
		{0, 0, "0"},
		{5, 0, "0"},
		{0, 10, "0.00"},
		{5, 10, "50.00"},
		{10, 10, "100.00"},
		{1, 3, "33.33"},
		{2, 3, "66.67"},
		// 一天内多次打卡时比率可以超过 100%
		{15, 10, "150.00"},
	}

	for _, c := range cases {
		got := FormatAttendanceRate(c.today, c.total)
		if got != c.want {
			t.Errorf("FormatAttendanceRate(%d, %d) = %q, want %q", c.today, c.total, got, c.want)
		}
	}
}
