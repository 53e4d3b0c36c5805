// Package deadline parses and renders task deadlines. Validation of
// form input and rendering of stored rows both go through Parse so the
// two paths cannot drift apart.
package deadline

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the only accepted deadline format (YYYY-MM-DD HH:MM:SS).
const Layout = "2006-01-02 15:04:05"

// ValidationError reports deadline input that does not match Layout.
type ValidationError struct {
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("deadline %q does not match format YYYY-MM-DD HH:MM:SS", e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// errFractionalSeconds rejects input time.Parse would accept after
// the seconds field, such as "09:00:00.123".
var errFractionalSeconds = errors.New("fractional seconds are not allowed")

// Parse reads raw in loc. Surrounding whitespace is ignored.
func Parse(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	trimmed := strings.TrimSpace(raw)
	if strings.ContainsAny(trimmed, ".,") {
		return time.Time{}, &ValidationError{Value: raw, Err: errFractionalSeconds}
	}
	t, err := time.ParseInLocation(Layout, trimmed, loc)
	if err != nil {
		return time.Time{}, &ValidationError{Value: raw, Err: err}
	}
	return t, nil
}

// Format renders t in Layout, dropping sub-second precision.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Remaining is the time left until a deadline.
type Remaining struct {
	Expired bool
	Hours   int64
	Minutes int64
}

// Until computes deadline - now. A deadline equal to now is zero, not
// expired. Seconds below a whole second or minute are discarded.
func Until(deadline, now time.Time) Remaining {
	left := int64(deadline.Sub(now) / time.Second)
	if left < 0 {
		return Remaining{Expired: true}
	}
	return Remaining{
		Hours:   left / 3600,
		Minutes: (left % 3600) / 60,
	}
}

func (r Remaining) String() string {
	if r.Expired {
		return "expired"
	}
	return fmt.Sprintf("%d h %d min", r.Hours, r.Minutes)
}

// Describe renders the time-left cell for a stored deadline.
func Describe(raw string, now time.Time, loc *time.Location) string {
	t, err := Parse(raw, loc)
	if err != nil {
		return "invalid"
	}
	return Until(t, now).String()
}
