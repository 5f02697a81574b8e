// Package domain holds the activity API request and response shapes
package domain

import (
	"linkpulse/internal/core/aggregate"
	"linkpulse/internal/core/view"
	adom "linkpulse/internal/services/analyzer/domain"
)

// InitRequest carries both raw export record lists
// Either list may be empty, an all-empty ingestion is a valid empty state
type InitRequest struct {
	Shares   []aggregate.Share   `json:"shares"`
	Comments []aggregate.Comment `json:"comments"`
}

// QueryRequest asks for one filtered view
type QueryRequest struct {
	RequestID int64           `json:"request_id" validate:"min=0"`
	Filters   view.FilterSpec `json:"filters"`
}

// InitResponse aliases the worker payload
type InitResponse = adom.InitResult

// QueryResponse aliases the worker payload
type QueryResponse = adom.QueryResult
