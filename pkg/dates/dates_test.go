package dates

import (
	"sort"
	"testing"
	"time"
)

func TestKeyOfSameDay(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	times := []time.Time{
		time.Date(2024, time.March, 15, 0, 0, 1, 0, loc),
		time.Date(2024, time.March, 15, 12, 30, 0, 0, loc),
		time.Date(2024, time.March, 15, 23, 59, 59, 0, loc),
	}
	want := Key("2024-03-15")
	for _, tt := range times {
		if got := KeyOf(tt); got != want {
			t.Errorf("KeyOf(%v) = %q, want %q", tt, got, want)
		}
	}
}

func TestKeyOfUsesWallClockFields(t *testing.T) {
	// 2024-03-15 00:30 in UTC+13 is still March 14 in UTC. The key must
	// follow the wall clock, not the UTC instant.
	loc := time.FixedZone("UTC+13", 13*60*60)
	local := time.Date(2024, time.March, 15, 0, 30, 0, 0, loc)
	if got := KeyOf(local); got != Key("2024-03-15") {
		t.Fatalf("KeyOf = %q, want 2024-03-15", got)
	}
}

func TestKeySortsInCalendarOrder(t *testing.T) {
	keys := []string{
		string(KeyOf(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC))),
		string(KeyOf(time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC))),
		string(KeyOf(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))),
		string(KeyOf(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))),
	}
	sort.Strings(keys)
	want := []string{"2023-12-31", "2024-02-09", "2024-02-10", "2024-12-01"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("sorted[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	k := Key("2024-03-15")
	parsed, err := Parse(k)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if KeyOf(parsed) != k {
		t.Fatalf("round trip gave %q", KeyOf(parsed))
	}
}

func TestValid(t *testing.T) {
	if !Key("2024-02-29").Valid() {
		t.Error("2024 is a leap year, Feb 29 should be valid")
	}
	if Key("2023-02-29").Valid() {
		t.Error("2023-02-29 should be invalid")
	}
	if Key("not-a-date").Valid() {
		t.Error("garbage key should be invalid")
	}
}

func TestDisplay(t *testing.T) {
	if got := Key("2024-03-15").Display(); got != "Friday, March 15, 2024" {
		t.Fatalf("Display = %q", got)
	}
	// Invalid keys fall back to the raw string.
	if got := Key("junk").Display(); got != "junk" {
		t.Fatalf("Display fallback = %q", got)
	}
}
