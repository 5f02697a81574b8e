package view

import (
	"math"
	"sort"
	"time"

	"linkpulse/internal/core/aggregate"
	"linkpulse/internal/core/calendar"
)

// Build reconstructs the filtered projection for f over agg
// Returns nil only when the aggregate has no months at all. A range that
// resolves to no months yields an explicit empty view instead
//
// Filtering uses proportional estimation: each month contributes its exact
// topic, share type, or heatmap cell count as total while post and comment
// sub-parts are scaled by the matching ratio and rounded. Sums of rounded
// sub-parts may differ from the exact total, that is the documented trade
// for O(months) query cost
func Build(agg *aggregate.Aggregate, f FilterSpec) *View {
	if !agg.HasData() {
		return nil
	}
	f = f.Normalize()

	targets, ok := resolveMonths(agg, f)
	if !ok || len(targets) == 0 {
		return emptyView(f)
	}

	v := &View{
		Timeline: make([]TimelinePoint, 0, len(targets)),
		Topics:   []aggregate.TopicCount{},
		Key:      f.CacheKey(),
	}

	topicAcc := map[string]int{}
	activeDays := map[string]struct{}{}
	var daysAcc [7]int
	var hoursAcc [24]int
	monthMeta := map[string]float64{}

	for _, key := range targets {
		mb := agg.Months[key]
		c := monthContribution(mb, f)
		monthMeta[key] = c.meta

		if c.total > 0 {
			v.Totals.Posts += c.posts
			v.Totals.Comments += c.comments
			v.Totals.Total += c.total
			v.ContentMix.Add(mb.ShareTypes)
			for d := 0; d < 7; d++ {
				daysAcc[d] += mb.Days[d]
				for h := 0; h < 24; h++ {
					v.Heatmap[d][h] += mb.Heatmap[d][h]
				}
			}
			for h := 0; h < 24; h++ {
				hoursAcc[h] += mb.Hours[h]
			}
			for t, n := range mb.Topics {
				if c.topicRatio != 1 {
					n = roundInt(float64(n) * c.topicRatio)
				}
				if n > 0 {
					topicAcc[t] += n
				}
			}
			for _, d := range mb.ActiveDays {
				activeDays[d] = struct{}{}
			}
		}

		v.Timeline = append(v.Timeline, TimelinePoint{
			Key:   key,
			Label: calendar.MonthLabel(key),
			Value: c.total,
		})
	}

	if f.MonthFocus == "" && (f.TimeRange == "1m" || f.TimeRange == "3m") {
		v.Timeline = weeklyTimeline(agg, f, targets, monthMeta)
	}

	for _, p := range v.Timeline {
		if p.Value > v.TimelineMax {
			v.TimelineMax = p.Value
		}
	}

	v.Topics = topTopics(topicAcc, 12)
	v.PeakHour = peakHour(hoursAcc)
	v.PeakDay = peakDay(daysAcc)
	v.Streaks = computeStreaks(activeDays)
	v.Trend = computeTrend(v.Timeline)

	return v
}

// resolveMonths translates the time range and month focus into target keys
func resolveMonths(agg *aggregate.Aggregate, f FilterSpec) ([]string, bool) {
	if f.MonthFocus != "" {
		return []string{f.MonthFocus}, true
	}
	first, last, ok := agg.MonthRange()
	if !ok {
		return nil, false
	}
	if f.TimeRange == "all" {
		return calendar.MonthsBetween(first, last), true
	}
	n, ok := windowMonths(f.TimeRange)
	if !ok {
		return nil, false
	}
	start := calendar.AddMonths(last, -(n - 1))
	return calendar.MonthsBetween(start, last), true
}

// contribution is one month's filtered slice
type contribution struct {
	posts, comments, total int
	topicRatio             float64 // ratio applied to per-topic counts
	meta                   float64 // topic and hour ratio reused per day in weekly timelines
}

// monthContribution applies the active filters to one month bucket
//
// Composition rule: the topic ratio scales posts and comments, a share type
// filter substitutes the exact share count for posts and zeroes comments,
// day and hour filters scale everything by the exact cell over the month
// total. The month's total contribution is the last exact count scaled by
// the ratios applied after it, rounded once
func monthContribution(mb *aggregate.MonthBucket, f FilterSpec) contribution {
	c := contribution{topicRatio: 1, meta: 1}
	if mb == nil || mb.Total == 0 {
		return c
	}

	posts := float64(mb.Posts)
	comments := float64(mb.Comments)
	exact := float64(mb.Total)
	afterExact := 1.0 // ratios applied after the exact count was taken
	shareExact := false

	if f.Topic != "all" {
		tc := mb.Topics[f.Topic]
		if tc == 0 {
			// no matching events, the month contributes nothing at any grain
			c.meta = 0
			return c
		}
		c.topicRatio = float64(tc) / float64(mb.Total)
		c.meta = c.topicRatio
		posts *= c.topicRatio
		comments *= c.topicRatio
		exact = float64(tc)
		afterExact = 1
	}

	if f.ShareType != "all" {
		p := float64(mb.ShareTypes.ByKind(f.ShareType))
		posts = p * c.topicRatio
		comments = 0
		shareExact = true
	}

	if f.Hour != nil {
		c.meta *= float64(mb.Hours[*f.Hour]) / float64(mb.Total)
	}

	if f.Day != nil || f.Hour != nil {
		var cell int
		switch {
		case f.Day != nil && f.Hour != nil:
			cell = mb.Heatmap[*f.Day][*f.Hour]
		case f.Day != nil:
			cell = mb.Days[*f.Day]
		default:
			cell = mb.Hours[*f.Hour]
		}
		if cell == 0 {
			return contribution{topicRatio: c.topicRatio, meta: c.meta}
		}
		r := float64(cell) / float64(mb.Total)
		posts *= r
		comments *= r
		if shareExact {
			// total remains post derived
		} else if f.Topic != "all" {
			afterExact *= r
		} else {
			exact = float64(cell)
			afterExact = 1
		}
	}

	c.posts = roundInt(posts)
	c.comments = roundInt(comments)
	if shareExact {
		c.total = c.posts
	} else {
		c.total = roundInt(exact * afterExact)
	}
	return c
}

// weeklyTimeline rebuilds the timeline at week grain from the day index
// The month level topic and hour ratios are applied uniformly to every day
// of that month, a documented approximation, the day filter is exact
func weeklyTimeline(
	agg *aggregate.Aggregate,
	f FilterSpec,
	targets []string,
	meta map[string]float64,
) []TimelinePoint {
	firstMonth, okA := calendar.ParseMonthKey(targets[0])
	lastMonth, okB := calendar.ParseMonthKey(targets[len(targets)-1])
	if !okA || !okB {
		return nil
	}
	rangeEnd := lastMonth.AddDate(0, 1, -1) // last day of the last month

	type week struct {
		start time.Time
		value float64
	}
	var weeks []week
	weekIdx := map[string]int{}
	cur := calendar.WeekStart(firstMonth)
	for !cur.After(rangeEnd) {
		weekIdx[calendar.DateKey(cur)] = len(weeks)
		weeks = append(weeks, week{start: cur})
		cur = cur.AddDate(0, 0, 7)
	}

	for d := firstMonth; !d.After(rangeEnd); d = d.AddDate(0, 0, 1) {
		if f.Day != nil && calendar.DayIndex(d.Weekday()) != *f.Day {
			continue
		}
		db := agg.DayIndex[calendar.DateKey(d)]
		if db == nil {
			continue
		}
		dayTotal := db.Total
		if f.ShareType != "all" {
			dayTotal = db.ShareTypes.ByKind(f.ShareType)
		}
		if dayTotal == 0 {
			continue
		}
		value := float64(dayTotal) * meta[calendar.MonthOf(calendar.DateKey(d))]
		if idx, ok := weekIdx[calendar.DateKey(calendar.WeekStart(d))]; ok {
			weeks[idx].value += value
		}
	}

	out := make([]TimelinePoint, len(weeks))
	for i, w := range weeks {
		out[i] = TimelinePoint{
			Key:   calendar.DateKey(w.start),
			Label: calendar.WeekLabel(w.start),
			Value: roundInt(w.value),
		}
	}
	return out
}

// topTopics ranks the accumulated topic counts, ties break alphabetically
func topTopics(acc map[string]int, limit int) []aggregate.TopicCount {
	out := make([]aggregate.TopicCount, 0, len(acc))
	for t, n := range acc {
		out = append(out, aggregate.TopicCount{Topic: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Topic < out[j].Topic
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// peakHour is the argmax over the hour counts, ties take the lowest hour
func peakHour(hours [24]int) PeakHour {
	best := PeakHour{}
	for h, n := range hours {
		if n > best.Count {
			best = PeakHour{Hour: h, Count: n}
		}
	}
	return best
}

// peakDay is the argmax over the weekday counts, ties take the lowest index
func peakDay(days [7]int) PeakDay {
	best := PeakDay{}
	for d, n := range days {
		if n > best.Count {
			best = PeakDay{Day: d, Count: n}
		}
	}
	return best
}

// computeStreaks walks the sorted active day set for the longest run and
// the run ending at the most recent active day
func computeStreaks(activeDays map[string]struct{}) Streaks {
	if len(activeDays) == 0 {
		return Streaks{}
	}
	keys := make([]string, 0, len(activeDays))
	for k := range activeDays {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s Streaks
	run := 0
	var prev time.Time
	for i, k := range keys {
		d, ok := calendar.ParseDateKey(k)
		if !ok {
			continue
		}
		if i > 0 && prev.AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > s.Longest {
			s.Longest = run
		}
		prev = d
	}

	// current streak walks backward one calendar day at a time from the
	// most recent active day until a gap appears
	last, ok := calendar.ParseDateKey(keys[len(keys)-1])
	if !ok {
		return s
	}
	s.Current = 1
	for d := last.AddDate(0, 0, -1); ; d = d.AddDate(0, 0, -1) {
		if _, active := activeDays[calendar.DateKey(d)]; !active {
			break
		}
		s.Current++
	}
	return s
}

// computeTrend compares the recent half of the timeline against the older
// half, split at floor(length/2)
func computeTrend(timeline []TimelinePoint) *Trend {
	if len(timeline) < 2 {
		return nil
	}
	mid := len(timeline) / 2
	older, recent := 0, 0
	for i, p := range timeline {
		if i < mid {
			older += p.Value
		} else {
			recent += p.Value
		}
	}
	t := &Trend{CurrentCount: recent, PreviousCount: older}
	if older == 0 {
		if recent > 0 {
			t.Percent = 100
			t.Direction = "up"
		} else {
			t.Direction = "flat"
		}
		return t
	}
	t.Percent = float64(recent-older) / float64(older) * 100
	switch {
	case t.Percent > 8:
		t.Direction = "up"
	case t.Percent < -12:
		t.Direction = "down"
	default:
		t.Direction = "flat"
	}
	return t
}

// emptyView is the explicit no-data sentinel for an unresolvable range
func emptyView(f FilterSpec) *View {
	return &View{
		Timeline: []TimelinePoint{},
		Topics:   []aggregate.TopicCount{},
		Key:      f.CacheKey(),
	}
}

func roundInt(v float64) int { return int(math.Round(v)) }
