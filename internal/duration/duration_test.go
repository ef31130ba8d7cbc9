package duration

import (
	"errors"
	"testing"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b string
		want string
	}{
		{"00:00:45", "00:00:30", "00:01:15"},
		{"00:59:59", "00:00:01", "01:00:00"},
		{"23:59:59", "00:00:01", "24:00:00"},
		{"99:59:59", "00:00:01", "100:00:00"},
		{"00:00:00", "00:00:00", "00:00:00"},
		{"01:02:03", "04:05:06", "05:07:09"},
		{"00:00:3", "00:00:03", "00:00:06"},
		{"aa:10:00", "00:00:01", "00:10:01"},
		{"", "00:00:05", "00:00:05"},
	}

	for _, tc := range cases {
		got := Add(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Add(%q, %q): expected %s, but got: %s", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestAddIdentity(t *testing.T) {
	for _, x := range []string{"00:00:00", "01:00:00", "00:90:00", "12:34:56", "00:00:75"} {
		if got, want := Add(x, Zero), Normalize(x); got != want {
			t.Errorf("Add(%q, zero): expected %s, but got: %s", x, want, got)
		}
	}
}

func TestAddCommutativeAndAssociative(t *testing.T) {
	values := []string{"00:00:59", "00:59:01", "12:00:30", "00:00:01", "101:20:40"}

	for _, a := range values {
		for _, b := range values {
			if Add(a, b) != Add(b, a) {
				t.Fatalf("Add(%q, %q) is not commutative", a, b)
			}

			for _, c := range values {
				left := Add(Add(a, b), c)
				right := Add(a, Add(b, c))

				if left != right {
					t.Fatalf(
						"(%s + %s) + %s = %s, but %s + (%s + %s) = %s",
						a, b, c, left, a, b, c, right,
					)
				}
			}
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in        string
		want      Seconds
		malformed bool
	}{
		{"00:00:00", 0, false},
		{"01:01:01", 3661, false},
		{"45", 45, false},
		{"01:30", 90, false},
		{"100:00:00", 360000, false},
		{"xx:00:10", 10, true},
		{"00:-5:10", 10, true},
		{"1:2:3:4", 2*3600 + 3*60 + 4, true},
		{"9999999999999999:00:00", 0, true},
		{"00:9999999999999999999:05", 5, true},
		{"2562047788015215:31:00", 2562047788015215 * 3600, true},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if got != tc.want {
			t.Errorf("Parse(%q): expected %d, but got: %d", tc.in, tc.want, got)
		}

		if tc.malformed != (err != nil) {
			t.Errorf("Parse(%q): unexpected error state: %v", tc.in, err)
		}

		if err != nil && !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q): error should match ErrMalformed", tc.in)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := map[Seconds]string{
		0:      "00:00:00",
		3:      "00:00:03",
		3599:   "00:59:59",
		86400:  "24:00:00",
		360001: "100:00:01",
		-4:     "00:00:00",
	}

	for in, want := range cases {
		if got := Format(in); got != want {
			t.Errorf("Format(%d): expected %s, but got: %s", in, want, got)
		}
	}
}

func TestSum(t *testing.T) {
	got := Sum("00:40:00", "00:30:30", "01:00:45")
	if want := "02:11:15"; got != want {
		t.Fatalf("expected %s, but got: %s", want, got)
	}

	if got := Sum(); got != Zero {
		t.Fatalf("empty sum should be zero, got: %s", got)
	}
}
