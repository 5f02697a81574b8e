// Package domain defines the analyzer worker ports and message payloads
package domain

import (
	"linkpulse/internal/core/aggregate"
	"linkpulse/internal/core/insight"
	"linkpulse/internal/core/view"
)

// InitInput carries the raw export records for a full ingestion
type InitInput struct {
	Shares   []aggregate.Share   `json:"shares"`
	Comments []aggregate.Comment `json:"comments"`
}

// InitResult reports what an ingestion or hydration produced
// TopicsTop60 feeds the dashboard topic picker
type InitResult struct {
	HasData     bool                   `json:"has_data"`
	TopicsTop60 []aggregate.TopicCount `json:"topics_top60"`
}

// QueryInput is one view request
// RequestID is issued by the caller and echoed back so stale responses can
// be discarded under the last-request-wins policy
type QueryInput struct {
	RequestID int64           `json:"request_id"`
	Filters   view.FilterSpec `json:"filters"`
}

// QueryResult is the response to one view request
type QueryResult struct {
	RequestID int64          `json:"request_id"`
	View      *view.View     `json:"view"`
	Insights  insight.Result `json:"insights"`
}
