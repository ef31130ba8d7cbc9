package timeutil

import (
	"testing"
	"time"
)

func TestResolveDay(t *testing.T) {
	now := time.Date(2024, time.May, 10, 14, 30, 0, 0, time.Local)

	cases := []struct {
		input string
		want  string
	}{
		{"05/01/24", "05/01/24"},
		{" 12/31/23 ", "12/31/23"},
		{"today", "05/10/24"},
		{"yesterday", "05/09/24"},
		{"3 days ago", "05/07/24"},
	}

	for _, tc := range cases {
		got, err := ResolveDay(tc.input, now)
		if err != nil {
			t.Errorf("ResolveDay(%q): unexpected error: %v", tc.input, err)
			continue
		}

		if got != tc.want {
			t.Errorf("ResolveDay(%q): expected %s, but got: %s", tc.input, tc.want, got)
		}
	}
}

func TestResolveDayEmpty(t *testing.T) {
	if _, err := ResolveDay("  ", time.Now()); err == nil {
		t.Fatal("expected an error for empty input")
	}
}

func TestStamp(t *testing.T) {
	in := time.Date(2023, time.November, 5, 7, 8, 9, 0, time.Local)

	out, err := ParseStamp(Stamp(in))
	if err != nil {
		t.Fatal(err)
	}

	if !out.Equal(in) {
		t.Fatalf("expected %v, but got: %v", in, out)
	}
}
