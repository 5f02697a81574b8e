// Package aggregate builds and serializes the query-ready activity index
//
// A single pass over the raw export records produces month and day grained
// buckets that the view layer can query in time proportional to the number
// of months in range rather than the number of raw events
package aggregate

// Share is one post from the shares export
type Share struct {
	Timestamp    string `json:"timestamp"`
	Text         string `json:"text"`
	HasSharedURL bool   `json:"has_shared_url"`
	HasMediaURL  bool   `json:"has_media_url"`
}

// Comment is one comment from the comments export
type Comment struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// ShareMix counts posts by content classification
// media wins over links, links win over text only
type ShareMix struct {
	TextOnly int `json:"text_only"`
	Links    int `json:"links"`
	Media    int `json:"media"`
}

// Add accumulates o into m
func (m *ShareMix) Add(o ShareMix) {
	m.TextOnly += o.TextOnly
	m.Links += o.Links
	m.Media += o.Media
}

// ByKind returns the count for a share type key, empty or "all" returns -1
func (m ShareMix) ByKind(kind string) int {
	switch kind {
	case "text":
		return m.TextOnly
	case "links":
		return m.Links
	case "media":
		return m.Media
	}
	return -1
}

// Totals are the global event counters
type Totals struct {
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
	Total    int `json:"total"`
}

// TopicCount pairs a topic with its occurrence count
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// MonthBucket pre-aggregates every event of one calendar month
type MonthBucket struct {
	Posts      int            `json:"posts"`
	Comments   int            `json:"comments"`
	Total      int            `json:"total"`
	Topics     map[string]int `json:"topics"`
	Days       [7]int         `json:"days"`
	Hours      [24]int        `json:"hours"`
	Heatmap    [7][24]int     `json:"heatmap"`
	ShareTypes ShareMix       `json:"share_types"`
	ActiveDays []string       `json:"active_days"`
}

// DayBucket is the coarser date grained rollup used for weekly timelines
type DayBucket struct {
	Posts      int      `json:"posts"`
	Comments   int      `json:"comments"`
	Total      int      `json:"total"`
	ShareTypes ShareMix `json:"share_types"`
}

// Aggregate is the persisted query-ready structure
// All fields are plain maps, slices, and numbers so the value can cross a
// process boundary or be written to a store unchanged
type Aggregate struct {
	Months        map[string]*MonthBucket `json:"months"`
	DayIndex      map[string]*DayBucket   `json:"day_index"`
	Topics        []TopicCount            `json:"topics"`
	GlobalHeatmap [7][24]int              `json:"global_heatmap"`
	ContentMix    ShareMix                `json:"content_mix"`
	ActiveDays    []string                `json:"active_days"`
	EarliestTS    *int64                  `json:"earliest_ts"`
	LatestTS      *int64                  `json:"latest_ts"`
	Totals        Totals                  `json:"totals"`
}

// HasData reports whether any event made it into the aggregate
func (a *Aggregate) HasData() bool {
	return a != nil && len(a.Months) > 0
}

// TopTopics returns up to n globally ranked topics
func (a *Aggregate) TopTopics(n int) []TopicCount {
	if a == nil || n <= 0 || len(a.Topics) == 0 {
		return nil
	}
	if n > len(a.Topics) {
		n = len(a.Topics)
	}
	out := make([]TopicCount, n)
	copy(out, a.Topics[:n])
	return out
}

// MonthRange returns the earliest and latest month keys seen
func (a *Aggregate) MonthRange() (first, last string, ok bool) {
	if !a.HasData() {
		return "", "", false
	}
	for k := range a.Months {
		if first == "" || k < first {
			first = k
		}
		if last == "" || k > last {
			last = k
		}
	}
	return first, last, true
}
