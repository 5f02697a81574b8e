// Package view reconstructs filtered dashboard projections from a built
// aggregate in time proportional to the number of months in range
package view

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterSpec is the query input selecting a slice of the aggregate
// Zero values mean unfiltered, TimeRange defaults to "all"
type FilterSpec struct {
	TimeRange  string `json:"time_range"  validate:"omitempty,max=16"`
	Topic      string `json:"topic"       validate:"omitempty,max=100"`
	MonthFocus string `json:"month_focus" validate:"omitempty,len=7"`
	Day        *int   `json:"day"         validate:"omitempty,min=0,max=6"`
	Hour       *int   `json:"hour"        validate:"omitempty,min=0,max=23"`
	ShareType  string `json:"share_type"  validate:"omitempty,oneof=all text links media"`
}

// Normalize fills defaults so equal filters render equal cache keys
func (f FilterSpec) Normalize() FilterSpec {
	if f.TimeRange == "" {
		f.TimeRange = "all"
	}
	if f.Topic == "" {
		f.Topic = "all"
	}
	if f.ShareType == "" {
		f.ShareType = "all"
	}
	return f
}

// CacheKey renders the canonical filter tuple string
func (f FilterSpec) CacheKey() string {
	f = f.Normalize()
	day, hour := "-", "-"
	if f.Day != nil {
		day = strconv.Itoa(*f.Day)
	}
	if f.Hour != nil {
		hour = strconv.Itoa(*f.Hour)
	}
	month := f.MonthFocus
	if month == "" {
		month = "-"
	}
	return strings.Join([]string{f.TimeRange, f.Topic, month, day, hour, f.ShareType}, "|")
}

// windowMonths parses a trailing window spec like "3m" into its month count
// Returns ok=false when no leading integer is present
func windowMonths(timeRange string) (int, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(timeRange), "m")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// String implements fmt.Stringer for log fields
func (f FilterSpec) String() string { return fmt.Sprintf("filters(%s)", f.CacheKey()) }
