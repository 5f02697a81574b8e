package aggregate

import (
	"sort"

	"linkpulse/internal/core/calendar"
	"linkpulse/internal/core/topics"
)

// kind tags one normalized event
type kind uint8

const (
	kindPost kind = iota
	kindComment
)

// builder accumulates one pass of events before finalization
type builder struct {
	agg        *Aggregate
	activeDays map[string]struct{}
	monthDays  map[string]map[string]struct{}
	topicCount map[string]int
	topicSeen  []string // first-seen order, breaks count ties deterministically
}

// Build runs the single pass reducer over shares then comments
// Records with unparseable timestamps are dropped silently, empty input
// yields a valid all-zero aggregate, the builder never fails
func Build(shares []Share, comments []Comment) *Aggregate {
	b := &builder{
		agg: &Aggregate{
			Months:   map[string]*MonthBucket{},
			DayIndex: map[string]*DayBucket{},
		},
		activeDays: map[string]struct{}{},
		monthDays:  map[string]map[string]struct{}{},
		topicCount: map[string]int{},
	}

	for _, s := range shares {
		b.add(kindPost, s.Timestamp, s.Text, classify(s))
	}
	for _, c := range comments {
		b.add(kindComment, c.Timestamp, c.Text, ShareMix{})
	}

	return b.finalize()
}

// classify picks the mutually exclusive content kind of a share
// media beats links beats text only
func classify(s Share) ShareMix {
	switch {
	case s.HasMediaURL:
		return ShareMix{Media: 1}
	case s.HasSharedURL:
		return ShareMix{Links: 1}
	default:
		return ShareMix{TextOnly: 1}
	}
}

func (b *builder) add(k kind, timestamp, text string, mix ShareMix) {
	co, ok := calendar.Parse(timestamp)
	if !ok {
		return
	}
	toks := topics.Extract(text)
	a := b.agg

	// global scalars
	if k == kindPost {
		a.Totals.Posts++
		a.ContentMix.Add(mix)
	} else {
		a.Totals.Comments++
	}
	a.Totals.Total++
	if a.EarliestTS == nil || co.Timestamp < *a.EarliestTS {
		ts := co.Timestamp
		a.EarliestTS = &ts
	}
	if a.LatestTS == nil || co.Timestamp > *a.LatestTS {
		ts := co.Timestamp
		a.LatestTS = &ts
	}
	a.GlobalHeatmap[co.DayIndex][co.Hour]++
	b.activeDays[co.DateKey] = struct{}{}
	for _, t := range toks {
		if b.topicCount[t] == 0 {
			b.topicSeen = append(b.topicSeen, t)
		}
		b.topicCount[t]++
	}

	// month bucket
	mb := a.Months[co.MonthKey]
	if mb == nil {
		mb = &MonthBucket{Topics: map[string]int{}}
		a.Months[co.MonthKey] = mb
		b.monthDays[co.MonthKey] = map[string]struct{}{}
	}
	if k == kindPost {
		mb.Posts++
		mb.ShareTypes.Add(mix)
	} else {
		mb.Comments++
	}
	mb.Total++
	mb.Days[co.DayIndex]++
	mb.Hours[co.Hour]++
	mb.Heatmap[co.DayIndex][co.Hour]++
	b.monthDays[co.MonthKey][co.DateKey] = struct{}{}
	for _, t := range toks {
		mb.Topics[t]++
	}

	// day bucket
	db := a.DayIndex[co.DateKey]
	if db == nil {
		db = &DayBucket{}
		a.DayIndex[co.DateKey] = db
	}
	if k == kindPost {
		db.Posts++
		db.ShareTypes.Add(mix)
	} else {
		db.Comments++
	}
	db.Total++
}

// finalize converts the working sets into their serializable shapes
func (b *builder) finalize() *Aggregate {
	a := b.agg

	a.ActiveDays = sortedKeys(b.activeDays)
	for key, mb := range a.Months {
		mb.ActiveDays = sortedKeys(b.monthDays[key])
	}

	firstSeen := make(map[string]int, len(b.topicSeen))
	for i, t := range b.topicSeen {
		firstSeen[t] = i
	}
	a.Topics = make([]TopicCount, 0, len(b.topicCount))
	for t, c := range b.topicCount {
		a.Topics = append(a.Topics, TopicCount{Topic: t, Count: c})
	}
	sort.Slice(a.Topics, func(i, j int) bool {
		if a.Topics[i].Count != a.Topics[j].Count {
			return a.Topics[i].Count > a.Topics[j].Count
		}
		return firstSeen[a.Topics[i].Topic] < firstSeen[a.Topics[j].Topic]
	})

	return a
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
