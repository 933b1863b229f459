// Package normalize turns wire entities from Aha! and Confluence into flat
// records with every optional field defaulted. Formatting code reads these
// records and never substitutes fallbacks itself.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinels substituted for absent fields.
const (
	NoStatus      = "No status"
	UnknownStatus = "Unknown"
	Unscheduled   = "Unscheduled"
	Unassigned    = "Unassigned"
	None          = "none"
	NotAvailable  = "N/A"
	NoDescription = "No description"
	UnknownUser   = "Unknown"
	NoProductLine = "None"
	NoContent     = "No content available"
)

// JoinList renders values comma-joined, or "none" when empty.
func JoinList(values []string) string {
	var kept []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return None
	}
	return strings.Join(kept, ", ")
}

// Percent renders p as "40%", or "N/A" when p is nil.
func Percent(p *float64) string {
	if p == nil {
		return NotAvailable
	}
	return Number(*p) + "%"
}

// Number renders f without a trailing ".0" for whole values.
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func numberOrZero(f *float64) string {
	if f == nil {
		return "0"
	}
	return Number(*f)
}

func countOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// Value renders an arbitrary JSON value as display text. nil and empty
// strings yield "".
func Value(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return Number(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the ISO-8601 forms both services emit. The zero time
// is returned for empty or unparseable input.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDate renders the calendar date of t using layout, or "N/A" for the
// zero time.
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return NotAvailable
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.Format(layout)
}

// DefaultDateLayout is month/day/year without padding.
const DefaultDateLayout = "1/2/2006"

// Truncate shortens s to at most n runes, appending "..." when anything was cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
