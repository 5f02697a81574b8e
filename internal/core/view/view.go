package view

import (
	"linkpulse/internal/core/aggregate"
)

// TimelinePoint is one bar of the activity timeline
type TimelinePoint struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Streaks are consecutive active day run lengths
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// PeakHour is the busiest hour of day with its count
type PeakHour struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// PeakDay is the busiest weekday (0=Monday) with its count
type PeakDay struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

// Trend compares the recent half of the timeline against the older half
type Trend struct {
	Percent       float64 `json:"percent"`
	Direction     string  `json:"direction"` // up down flat
	CurrentCount  int     `json:"current_count"`
	PreviousCount int     `json:"previous_count"`
}

// View is the filtered, aggregated projection served to the dashboard
// It is always derived on demand and never stored
type View struct {
	Timeline    []TimelinePoint        `json:"timeline"`
	TimelineMax int                    `json:"timeline_max"`
	Heatmap     [7][24]int             `json:"heatmap"`
	Topics      []aggregate.TopicCount `json:"topics"`
	ContentMix  aggregate.ShareMix     `json:"content_mix"`
	Streaks     Streaks                `json:"streaks"`
	PeakHour    PeakHour               `json:"peak_hour"`
	PeakDay     PeakDay                `json:"peak_day"`
	Trend       *Trend                 `json:"trend"`
	Totals      aggregate.Totals       `json:"totals"`
	Key         string                 `json:"key"`
}
