// Package duration implements the carrying arithmetic used to accumulate
// tracked time. Values are whole seconds in memory and "HH:MM:SS" strings at
// the persistence and display boundary.
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
	components       = 3
)

// Zero is the canonical representation of an empty duration.
const Zero = "00:00:00"

// ErrMalformed is matched by every error returned from Parse.
var ErrMalformed = errors.New("malformed duration")

// Seconds is an amount of tracked time in whole seconds.
type Seconds int64

// MalformedError reports the components of a duration string that could not
// be read and were counted as zero.
type MalformedError struct {
	Input  string
	Fields []string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf(
		"malformed duration %q: treated %s as 0",
		e.Input,
		strings.Join(e.Fields, ", "),
	)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

var (
	fieldNames = [components]string{"hours", "minutes", "seconds"}
	fieldUnits = [components]Seconds{secondsInAnHour, secondsInAMinute, 1}
)

// Parse reads an "HH:MM:SS" string. Missing leading components are treated as
// zero ("01:30" is ninety seconds). Unreadable or negative components count as
// zero so that partially written data can still be used, as do components
// that would push the total past the largest representable duration. When
// that happens the returned value is valid and the error is a
// *MalformedError.
func Parse(s string) (Seconds, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")

	var bad []string

	if len(parts) > components {
		bad = append(bad, strings.Join(parts[:len(parts)-components], ":"))
		parts = parts[len(parts)-components:]
	}

	// right-align so that the last part is always seconds
	offset := components - len(parts)

	var total Seconds

	for i, p := range parts {
		field := fieldNames[offset+i]
		unit := fieldUnits[offset+i]

		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 || Seconds(n) > (math.MaxInt64-total)/unit {
			bad = append(bad, field)
			continue
		}

		total += Seconds(n) * unit
	}

	if len(bad) > 0 {
		return total, &MalformedError{Input: s, Fields: bad}
	}

	return total, nil
}

// Lenient is Parse without the repair report.
func Lenient(s string) Seconds {
	v, _ := Parse(s)
	return v
}

// Format renders s as "HH:MM:SS". Hours are not capped and grow past two
// digits when needed.
func Format(s Seconds) string {
	if s < 0 {
		s = 0
	}

	h := s / secondsInAnHour
	m := (s % secondsInAnHour) / secondsInAMinute
	sec := s % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

func (s Seconds) String() string {
	return Format(s)
}

// Normalize rewrites a duration string in canonical form, carrying
// overflowing seconds and minutes.
func Normalize(s string) string {
	return Format(Lenient(s))
}

// Add returns the carried sum of two duration strings.
func Add(a, b string) string {
	return Format(Lenient(a) + Lenient(b))
}

// Sum adds any number of duration strings.
func Sum(values ...string) string {
	total := Zero

	for _, v := range values {
		total = Add(total, v)
	}

	return total
}
