// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest annotates ctx with the request id so handlers and middleware agree
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
