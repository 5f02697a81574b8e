// Package calendar parses export timestamps into the grouping coordinates
// used by the aggregation and view layers
//
// Timestamps are `YYYY-MM-DD HH:MM:SS` and are treated as already expressed
// in local time, no UTC conversion is layered on top. Any timezone mismatch
// must be fixed upstream of this package
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Coords are the calendar coordinates of one event
type Coords struct {
	Timestamp int64  // epoch millis
	MonthKey  string // YYYY-MM
	DateKey   string // YYYY-MM-DD
	DayIndex  int    // 0=Monday .. 6=Sunday
	Hour      int    // 0..23 local
}

// Parse splits raw on the date/time boundary and returns the coordinates
// Malformed input returns ok=false and the caller must drop the record,
// missing hour and minute components default to zero
//
// Out-of-range components are normalized by time.Date rather than rejected,
// so "2025-13-45" lands in 2026-02. Exports occasionally carry clock skew
// artifacts like "24:00" and dropping those records would undercount
func Parse(raw string) (Coords, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Coords{}, false
	}

	datePart, timePart, _ := strings.Cut(raw, " ")

	dp := strings.Split(datePart, "-")
	if len(dp) < 3 {
		return Coords{}, false
	}
	year, month, day := atoi(dp[0]), atoi(dp[1]), atoi(dp[2])
	if year == 0 || month == 0 || day == 0 {
		return Coords{}, false
	}

	hour, minute, sec := 0, 0, 0
	if timePart != "" {
		tp := strings.Split(timePart, ":")
		if len(tp) > 0 {
			hour = atoi(tp[0])
		}
		if len(tp) > 1 {
			minute = atoi(tp[1])
		}
		if len(tp) > 2 {
			sec = atoi(tp[2])
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.Local)
	return Coords{
		Timestamp: t.UnixMilli(),
		MonthKey:  fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())),
		DateKey:   DateKey(t),
		DayIndex:  DayIndex(t.Weekday()),
		Hour:      t.Hour(),
	}, true
}

// DayIndex remaps the platform weekday so Monday is zero
func DayIndex(w time.Weekday) int { return (int(w) + 6) % 7 }

// DateKey formats t as a zero padded YYYY-MM-DD key
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// MonthOf returns the month key prefix of a date key
func MonthOf(dateKey string) string {
	if len(dateKey) < 7 {
		return dateKey
	}
	return dateKey[:7]
}

// ParseMonthKey parses a YYYY-MM key into the first instant of that month
func ParseMonthKey(key string) (time.Time, bool) {
	y, m, ok := splitMonthKey(key)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.Local), true
}

// ParseDateKey parses a YYYY-MM-DD key into local midnight of that day
func ParseDateKey(key string) (time.Time, bool) {
	p := strings.Split(key, "-")
	if len(p) != 3 {
		return time.Time{}, false
	}
	y, m, d := atoi(p[0]), atoi(p[1]), atoi(p[2])
	if y == 0 || m == 0 || d == 0 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), true
}

// AddMonths shifts a month key by n calendar months
func AddMonths(key string, n int) string {
	t, ok := ParseMonthKey(key)
	if !ok {
		return key
	}
	t = t.AddDate(0, n, 0)
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthsBetween returns the contiguous inclusive sequence of month keys
// from first to last, gaps are filled. Returns nil when the bounds do not
// parse or are inverted
func MonthsBetween(first, last string) []string {
	a, okA := ParseMonthKey(first)
	b, okB := ParseMonthKey(last)
	if !okA || !okB || a.After(b) {
		return nil
	}
	var out []string
	for !a.After(b) {
		out = append(out, fmt.Sprintf("%04d-%02d", a.Year(), int(a.Month())))
		a = a.AddDate(0, 1, 0)
	}
	return out
}

// MonthLabel renders a month key as MonYYYY for timeline labels
func MonthLabel(key string) string {
	t, ok := ParseMonthKey(key)
	if !ok {
		return key
	}
	return t.Format("Jan2006")
}

// WeekLabel renders a week start as abbreviated month plus zero padded day
func WeekLabel(weekStart time.Time) string {
	return weekStart.Format("Jan") + fmt.Sprintf("%02d", weekStart.Day())
}

// WeekStart returns the Monday on or before t at local midnight
func WeekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return t.AddDate(0, 0, -DayIndex(t.Weekday()))
}

func splitMonthKey(key string) (int, int, bool) {
	p := strings.Split(key, "-")
	if len(p) != 2 {
		return 0, 0, false
	}
	y, m := atoi(p[0]), atoi(p[1])
	if y == 0 || m == 0 {
		return 0, 0, false
	}
	return y, m, true
}

// atoi is a forgiving integer parse that returns zero for junk
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
