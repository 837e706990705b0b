package schedule

import (
	"fmt"
	"regexp"
	"strconv"
)

// Matches a textual range like "9:00-10:30". Hours are not checked against
// 0-23 and minutes are not checked against 0-59; the editor never enforced
// that and stored strings are displayed as typed.
var timeRangePattern = regexp.MustCompile(`(\d+):(\d+)\s*-\s*(\d+):(\d+)`)

// TimeRange holds the parsed endpoints of a slot's time string as minute
// offsets from midnight.
type TimeRange struct {
	StartMinutes int
	EndMinutes   int
}

// Duration is end minus start in minutes. May be zero or negative when the
// range is written back to front.
func (r TimeRange) Duration() int {
	return r.EndMinutes - r.StartMinutes
}

// ParseTimeRange extracts a TimeRange from a slot time string. The second
// return value is false when the string does not contain an H:MM-H:MM range.
func ParseTimeRange(s string) (TimeRange, bool) {
	m := timeRangePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeRange{}, false
	}
	startHour, _ := strconv.Atoi(m[1])
	startMin, _ := strconv.Atoi(m[2])
	endHour, _ := strconv.Atoi(m[3])
	endMin, _ := strconv.Atoi(m[4])
	return TimeRange{
		StartMinutes: startHour*60 + startMin,
		EndMinutes:   endHour*60 + endMin,
	}, true
}

// FormatDuration renders the duration of a slot time string for display.
// Malformed strings yield "". Zero and negative ranges intentionally fall
// through the minutes branch ("0 minutes", "-30 minutes"); the original
// editor behaved this way and downstream copy depends on the exact strings.
func FormatDuration(s string) string {
	r, ok := ParseTimeRange(s)
	if !ok {
		return ""
	}
	d := r.Duration()
	switch {
	case d == 60:
		return "1 hour"
	case d < 60:
		return fmt.Sprintf("%d minutes", d)
	case d%60 == 0:
		return fmt.Sprintf("%d hours", d/60)
	default:
		return fmt.Sprintf("%dh %dm", d/60, d%60)
	}
}
