// Package preview projects resume form state into a display document.
package preview

import (
	"strings"
	"time"
)

// Present replaces the end date of a current position.
const Present = "Present"

var monthLayouts = []string{"2006-01", "2006-01-02"}

// FormatMonth formats a month input ("2024-03") as "Mar 2024".
// Empty input gives an empty string; input that is not a month date
// (for example a bare year) is returned unchanged.
func FormatMonth(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return value
}

// FormatRange formats a start/end pair as "Mar 2020 - Present".
// A current position always ends in Present, whatever end holds.
func FormatRange(start, end string, current bool) string {
	from := FormatMonth(start)
	to := FormatMonth(end)
	if current {
		to = Present
	}

	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from
	default:
		return from + " - " + to
	}
}
