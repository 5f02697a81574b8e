// Package insight turns a built view into human readable observations
// Rules run in a fixed order and each appends at most one insight, the
// generator is a pure read and never mutates the view
package insight

import (
	"fmt"
	"math"

	"linkpulse/internal/core/view"
)

// Insight is one observation about the filtered view
type Insight struct {
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Result is the full insight payload for one view
type Result struct {
	Insights []Insight `json:"insights"`
	Tip      *string   `json:"tip"`
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Generate evaluates the rule set against v
// A view with zero total yields an empty insight list and no tip, safe to
// call on any view including the explicit empty sentinel
func Generate(v *view.View) Result {
	if v == nil || v.Totals.Total == 0 {
		return Result{Insights: []Insight{}}
	}

	out := make([]Insight, 0, 7)

	// chronotype from the peak hour, exactly one of the three fires
	switch {
	case v.PeakHour.Hour <= 5:
		out = append(out, Insight{
			Kind:  "chronotype",
			Title: "Early Bird",
			Detail: fmt.Sprintf("Most of your activity lands around %s, well before the workday starts.",
				clock(v.PeakHour.Hour)),
		})
	case v.PeakHour.Hour >= 21:
		out = append(out, Insight{
			Kind:  "chronotype",
			Title: "Night Owl",
			Detail: fmt.Sprintf("Your busiest hour is %s, you do your best posting after dark.",
				clock(v.PeakHour.Hour)),
		})
	default:
		out = append(out, Insight{
			Kind:  "chronotype",
			Title: "Steady Rhythm",
			Detail: fmt.Sprintf("Your activity peaks at %s, squarely inside the usual day.",
				clock(v.PeakHour.Hour)),
		})
	}

	if t := v.Trend; t != nil {
		switch t.Direction {
		case "up":
			out = append(out, Insight{
				Kind:   "trend",
				Title:  "Trending Up",
				Detail: fmt.Sprintf("Recent activity is up %d%% over the earlier part of this range.", roundPct(t.Percent)),
			})
		case "down":
			out = append(out, Insight{
				Kind:   "trend",
				Title:  "Taking a Breather",
				Detail: fmt.Sprintf("Activity slowed by %d%% compared with the earlier part of this range.", roundPct(math.Abs(t.Percent))),
			})
		}
	}

	if v.Totals.Total < 12 {
		out = append(out, Insight{
			Kind:   "low_activity",
			Title:  "Quiet Stretch",
			Detail: fmt.Sprintf("Only %d events in this range, a light period.", v.Totals.Total),
		})
	}

	if v.Totals.Posts > 0 {
		ratio := float64(v.Totals.Comments) / float64(v.Totals.Posts)
		if ratio >= 3 {
			out = append(out, Insight{
				Kind:   "engagement",
				Title:  "Super Engager",
				Detail: fmt.Sprintf("You leave %.1f comments for every post, conversation is your thing.", ratio),
			})
		}
	}

	if len(v.Topics) > 0 {
		top := v.Topics[0]
		out = append(out, Insight{
			Kind:   "topic_focus",
			Title:  "Topic Focus",
			Detail: fmt.Sprintf("Your most frequent topic is %q with %d mentions.", top.Topic, top.Count),
		})
	}

	if v.Streaks.Current >= 7 {
		out = append(out, Insight{
			Kind:   "streak",
			Title:  "Consistency Streak",
			Detail: fmt.Sprintf("You are on a %d day streak of daily activity.", v.Streaks.Current),
		})
	}

	out = append(out, Insight{
		Kind:   "peak_day",
		Title:  "Peak Day",
		Detail: fmt.Sprintf("%s is your most active day with %d events.", weekday(v.PeakDay.Day), v.PeakDay.Count),
	})

	tip := fmt.Sprintf("Your audience sees you most on %s around %s. Schedule your next post there for the best reach.",
		weekday(v.PeakDay.Day), clock(v.PeakHour.Hour))

	return Result{Insights: out, Tip: &tip}
}

func weekday(idx int) string {
	if idx < 0 || idx > 6 {
		return "Monday"
	}
	return weekdayNames[idx]
}

func clock(hour int) string { return fmt.Sprintf("%02d:00", hour) }

func roundPct(p float64) int { return int(math.Round(p)) }
