package domain

import "context"

// ServicePort is the analyzer worker protocol consumed by transports
// Querying before any aggregate is loaded is a sequencing fault and returns
// a conflict error, bad data never does
type ServicePort interface {
	Init(ctx context.Context, in InitInput) (InitResult, error)
	Hydrate(ctx context.Context, serialized []byte) (InitResult, error)
	Query(ctx context.Context, in QueryInput) (QueryResult, error)
	Snapshot(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}
