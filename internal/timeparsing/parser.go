// Package timeparsing resolves the created_since filter into a lower bound.
// Expressions are tried in layers: a compact span (7d, -2w, +6h), an
// absolute date (2025-01-31, RFC3339), then English phrases such as
// "last monday" or "3 days ago".
package timeparsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit is the calendar unit of a Span.
type Unit byte

const (
	Hour  Unit = 'h'
	Day   Unit = 'd'
	Week  Unit = 'w'
	Month Unit = 'm'
	Year  Unit = 'y'
)

// Direction is the way an unsigned span points.
type Direction int

const (
	Forward Direction = 1
	Back    Direction = -1
)

// Span is a signed compact duration such as "-7d".
type Span struct {
	Amount int
	Unit   Unit
}

var spanRe = regexp.MustCompile(`^([+-]?)(\d+)([hdwmy])$`)

// ParseSpan parses [+-]N(h|d|w|m|y). An explicit sign wins; otherwise the
// span points in the unsigned direction.
func ParseSpan(s string, unsigned Direction) (Span, error) {
	m := spanRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return Span{}, fmt.Errorf("not a compact duration: %q", s)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return Span{}, fmt.Errorf("invalid duration amount: %q", m[2])
	}
	switch m[1] {
	case "-":
		n = -n
	case "":
		n *= int(unsigned)
	}
	return Span{Amount: n, Unit: Unit(m[3][0])}, nil
}

// From applies the span to base. Months and years follow time.AddDate
// normalization.
func (s Span) From(base time.Time) time.Time {
	switch s.Unit {
	case Hour:
		return base.Add(time.Duration(s.Amount) * time.Hour)
	case Day:
		return base.AddDate(0, 0, s.Amount)
	case Week:
		return base.AddDate(0, 0, 7*s.Amount)
	case Month:
		return base.AddDate(0, s.Amount, 0)
	case Year:
		return base.AddDate(s.Amount, 0, 0)
	}
	return base
}

func (s Span) String() string {
	return fmt.Sprintf("%+d%c", s.Amount, s.Unit)
}

// ParseCompactDuration resolves a span against now; unsigned spans point
// forward ("3m" is three months from now).
func ParseCompactDuration(s string, now time.Time) (time.Time, error) {
	span, err := ParseSpan(s, Forward)
	if err != nil {
		return time.Time{}, err
	}
	return span.From(now), nil
}

// IsCompactDuration reports whether s is span syntax.
func IsCompactDuration(s string) bool {
	return spanRe.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// ParseRelativeTime tries each layer in order, with unsigned spans
// pointing forward.
func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	return resolve(s, now, Forward)
}

// Since resolves a created_since bound. Unsigned spans look back, so "7d"
// and "-7d" both mean seven days ago.
func Since(s string, now time.Time) (time.Time, error) {
	return resolve(s, now, Back)
}

func resolve(s string, now time.Time, unsigned Direction) (time.Time, error) {
	s = strings.TrimSpace(s)
	if span, err := ParseSpan(s, unsigned); err == nil {
		return span.From(now), nil
	}
	if t, err := ParseAbsolute(s, now); err == nil {
		return t, nil
	}
	if t, err := ParseNaturalLanguage(s, now); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time expression %q (try -7d, \"last monday\" or 2025-01-31)", s)
}
