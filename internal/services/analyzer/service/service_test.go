package service

import (
	"context"
	"testing"

	"linkpulse/internal/core/aggregate"
	"linkpulse/internal/core/view"
	perr "linkpulse/internal/platform/errors"
	dom "linkpulse/internal/services/analyzer/domain"
)

func testInput() dom.InitInput {
	return dom.InitInput{
		Shares: []aggregate.Share{
			{Timestamp: "2025-01-02 09:15:00", Text: "Excited to ship our new #data tool"},
			{Timestamp: "2025-01-03 10:00:00", Text: "More #data experiments", HasMediaURL: true},
		},
		Comments: []aggregate.Comment{
			{Timestamp: "2025-01-02 09:45:00"},
		},
	}
}

func TestSvc_InitThenQuery(t *testing.T) {
	t.Parallel()

	s := New(Config{CacheCap: 8})
	defer s.Close()
	ctx := context.Background()

	ir, err := s.Init(ctx, testInput())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !ir.HasData {
		t.Fatalf("expected data after init")
	}
	if len(ir.TopicsTop60) == 0 || ir.TopicsTop60[0].Topic != "data" {
		t.Fatalf("topics = %v, want data first", ir.TopicsTop60)
	}

	qr, err := s.Query(ctx, dom.QueryInput{RequestID: 42, Filters: view.FilterSpec{}})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if qr.RequestID != 42 {
		t.Fatalf("RequestID = %d, want 42", qr.RequestID)
	}
	if qr.View == nil || qr.View.Totals.Total != 3 {
		t.Fatalf("view = %+v", qr.View)
	}
	if len(qr.Insights.Insights) == 0 {
		t.Fatalf("expected insights for an active view")
	}
}

func TestSvc_QueryBeforeInitIsConflict(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	defer s.Close()

	_, err := s.Query(context.Background(), dom.QueryInput{RequestID: 1})
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestSvc_CacheHitSharesView(t *testing.T) {
	t.Parallel()

	s := New(Config{CacheCap: 8})
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Init(ctx, testInput()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	q1, err := s.Query(ctx, dom.QueryInput{RequestID: 1, Filters: view.FilterSpec{Topic: "data"}})
	if err != nil {
		t.Fatalf("first query: %v", err)
	}
	q2, err := s.Query(ctx, dom.QueryInput{RequestID: 2, Filters: view.FilterSpec{Topic: "data"}})
	if err != nil {
		t.Fatalf("second query: %v", err)
	}

	// the cached entry is reused, only the request id is rewritten
	if q1.View != q2.View {
		t.Fatalf("expected the cached view pointer on the repeat query")
	}
	if q1.RequestID != 1 || q2.RequestID != 2 {
		t.Fatalf("request ids = %d/%d, want 1/2", q1.RequestID, q2.RequestID)
	}
}

func TestSvc_InitInvalidatesCache(t *testing.T) {
	t.Parallel()

	s := New(Config{CacheCap: 8})
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Init(ctx, testInput()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	q1, _ := s.Query(ctx, dom.QueryInput{RequestID: 1})

	if _, err := s.Init(ctx, testInput()); err != nil {
		t.Fatalf("re-Init: %v", err)
	}
	q2, err := s.Query(ctx, dom.QueryInput{RequestID: 2})
	if err != nil {
		t.Fatalf("query after re-init: %v", err)
	}
	if q1.View == q2.View {
		t.Fatalf("re-init must rebuild views, not serve the stale cache")
	}
}

func TestSvc_SnapshotHydrateRoundTrip(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Init(ctx, testInput()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	raw, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	other := New(Config{})
	defer other.Close()

	ir, err := other.Hydrate(ctx, raw)
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if !ir.HasData {
		t.Fatalf("hydrated worker should report data")
	}

	qr, err := other.Query(ctx, dom.QueryInput{RequestID: 7})
	if err != nil {
		t.Fatalf("query after hydrate: %v", err)
	}
	if qr.View == nil || qr.View.Totals.Total != 3 {
		t.Fatalf("hydrated view = %+v", qr.View)
	}
}

func TestSvc_HydrateRejectsMalformed(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	defer s.Close()

	_, err := s.Hydrate(context.Background(), []byte("{broken"))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json code", err)
	}
}

func TestSvc_ClearDropsState(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Init(ctx, testInput()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Query(ctx, dom.QueryInput{}); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("query after clear = %v, want conflict", err)
	}
	if _, err := s.Snapshot(ctx); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("snapshot after clear = %v, want conflict", err)
	}
}

func TestSvc_ClosedWorkerIsUnavailable(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	s.Close()

	_, err := s.Query(context.Background(), dom.QueryInput{})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

func TestSvc_CanceledContext(t *testing.T) {
	t.Parallel()

	s := New(Config{})
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Query(ctx, dom.QueryInput{}); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
