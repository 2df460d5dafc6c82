// Package dates defines the canonical day key used to index planner
// collections.
package dates

import (
	"fmt"
	"time"
)

const (
	layoutISO  = "2006-01-02"
	layoutLong = "Monday, January 2, 2006"
)

// Key identifies one calendar day. Keys are fixed width year-month-day
// strings, so lexicographic order is calendar order.
type Key string

// KeyOf derives the key from the wall-clock calendar fields of t. Two times
// on the same calendar day always map to the same key, regardless of
// time-of-day. UTC round-tripping is deliberately avoided here; the calendar
// grid is built from the same local fields and the two must agree.
func KeyOf(t time.Time) Key {
	return Key(fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day()))
}

// Today returns the key for the current local day.
func Today() Key {
	return KeyOf(time.Now())
}

// Parse converts a key back into a time at local midnight.
func Parse(k Key) (time.Time, error) {
	return time.ParseInLocation(layoutISO, string(k), time.Local)
}

// Valid reports whether k is a well-formed day key.
func (k Key) Valid() bool {
	_, err := Parse(k)
	return err == nil
}

// Time is Parse without the error; invalid keys yield the zero time.
func (k Key) Time() time.Time {
	t, err := Parse(k)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Display renders the key for panel titles, e.g. "Friday, March 15, 2024".
func (k Key) Display() string {
	t, err := Parse(k)
	if err != nil {
		return string(k)
	}
	return t.Format(layoutLong)
}

func (k Key) String() string {
	return string(k)
}
