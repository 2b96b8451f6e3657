package source

import (
	"strconv"
	"strings"
	"time"
)

// TimeRange is a precise start/end pair on a single calendar day. Records
// without a usable clock time never get one; a nil *TimeRange means the
// moment of the event within its day is unknown.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseDay extracts a calendar day from an arbitrary raw value. It accepts
// time.Time values, day-first `DD/MM/YYYY` strings (anything after the date
// token is ignored), and ISO-like strings (`YYYY-MM-DD`, truncated at a `T`
// separator). The returned time is midnight UTC of that day. It is a total
// function: empty, unrecognized or impossible dates report ok=false.
func ParseDay(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	case string:
		return parseDayString(t)
	default:
		return time.Time{}, false
	}
}

func parseDayString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		// Day-first form; a trailing time or free text after the first
		// whitespace is ignored.
		token, _, _ := strings.Cut(s, " ")
		parts := strings.Split(token, "/")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, false
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes overflow (32/01 becomes 01/02); reject
		// anything that did not survive the round trip.
		if d.Year() != year || int(d.Month()) != month || d.Day() != day {
			return time.Time{}, false
		}
		return d, true
	}

	// ISO-like: drop any time component.
	token, _, _ := strings.Cut(s, "T")
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(token), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ParseDurationHours converts a raw duration value into fractional hours.
// Numbers pass through as hours, `H:M` strings convert to fractional hours,
// and decimal strings may use either `.` or `,` as separator. Anything else,
// including the empty string, is 0.
func ParseDurationHours(v any) float64 {
	switch d := v.(type) {
	case float64:
		return d
	case float32:
		return float64(d)
	case int:
		return float64(d)
	case int64:
		return float64(d)
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return 0
		}
		if h, m, ok := strings.Cut(s, ":"); ok {
			hours, err1 := strconv.ParseFloat(strings.TrimSpace(h), 64)
			mins, err2 := strconv.ParseFloat(strings.TrimSpace(m), 64)
			if err1 != nil {
				return 0
			}
			if err2 != nil {
				mins = 0
			}
			return hours + mins/60.0
		}
		s = strings.ReplaceAll(s, ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ParseCount reads a whole number from a raw value, tolerating JSON float
// decoding and numeric strings.
func ParseCount(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// BuildTimeRange anchors a `HH:MM` clock string on a calendar day and extends
// it by the given duration. It returns nil when the day is zero, the duration
// is not positive, the clock string is absent or lacks a colon, or the hour
// component is not numeric: a TimeRange is only ever produced from a precise
// clock time and a real extent, so End is always after Start.
func BuildTimeRange(day time.Time, clock string, durationHours float64) *TimeRange {
	if day.IsZero() || durationHours <= 0 {
		return nil
	}
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return nil
	}
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return nil
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return nil
	}
	minute, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		minute = 0
	}

	start := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	end := start.Add(time.Duration(durationHours * float64(time.Hour)))
	return &TimeRange{Start: start, End: end}
}
