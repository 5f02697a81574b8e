// Package service implements the analyzer worker that owns the aggregate
//
// One goroutine owns the current aggregate and the view cache as exclusive
// mutable state, requests cross a channel as plain payloads and are
// processed in arrival order. Callers enforce last-request-wins by
// discarding responses whose request id is no longer the latest issued,
// a started computation runs to completion but its result is dropped
package service

import (
	"context"

	"linkpulse/internal/core/aggregate"
	"linkpulse/internal/core/insight"
	"linkpulse/internal/core/view"
	perr "linkpulse/internal/platform/errors"
	"linkpulse/internal/platform/logger"
	dom "linkpulse/internal/services/analyzer/domain"

	"github.com/google/uuid"
)

// Config controls the worker
type Config struct {
	CacheCap int // bounded view cache size, evicts oldest half past the cap
}

// Service is the analyzer contract
type Service interface {
	dom.ServicePort
}

// Svc owns the worker goroutine and its request channel
type Svc struct {
	cfg      Config
	requests chan request
	done     chan struct{}
}

type reqKind uint8

const (
	reqInit reqKind = iota
	reqHydrate
	reqQuery
	reqSnapshot
	reqClear
)

type request struct {
	kind  reqKind
	init  dom.InitInput
	raw   []byte
	query dom.QueryInput
	reply chan response
}

type response struct {
	initRes  dom.InitResult
	queryRes dom.QueryResult
	raw      []byte
	err      error
}

// New constructs the service and starts its worker goroutine
// Close stops the worker, pending requests fail with unavailable
func New(cfg Config) *Svc {
	if cfg.CacheCap <= 0 {
		cfg.CacheCap = 64
	}
	s := &Svc{
		cfg:      cfg,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

// Close stops the worker goroutine
func (s *Svc) Close() { close(s.done) }

// Init builds a fresh aggregate from raw records
func (s *Svc) Init(ctx context.Context, in dom.InitInput) (dom.InitResult, error) {
	res, err := s.send(ctx, request{kind: reqInit, init: in})
	return res.initRes, err
}

// Hydrate restores a previously serialized aggregate without recomputation
func (s *Svc) Hydrate(ctx context.Context, serialized []byte) (dom.InitResult, error) {
	res, err := s.send(ctx, request{kind: reqHydrate, raw: serialized})
	return res.initRes, err
}

// Query builds the filtered view and its insights
func (s *Svc) Query(ctx context.Context, in dom.QueryInput) (dom.QueryResult, error) {
	res, err := s.send(ctx, request{kind: reqQuery, query: in})
	return res.queryRes, err
}

// Snapshot returns the current aggregate in its serialized form
func (s *Svc) Snapshot(ctx context.Context) ([]byte, error) {
	res, err := s.send(ctx, request{kind: reqSnapshot})
	return res.raw, err
}

// Clear drops the aggregate and the view cache
func (s *Svc) Clear(ctx context.Context) error {
	_, err := s.send(ctx, request{kind: reqClear})
	return err
}

// send hands a request to the worker and waits for its reply
func (s *Svc) send(ctx context.Context, req request) (response, error) {
	if err := ctx.Err(); err != nil {
		return response{}, err
	}
	select {
	case <-s.done:
		return response{}, perr.Unavailablef("analyzer worker stopped")
	default:
	}

	req.reply = make(chan response, 1)
	select {
	case s.requests <- req:
	case <-s.done:
		return response{}, perr.Unavailablef("analyzer worker stopped")
	case <-ctx.Done():
		return response{}, ctx.Err()
	}
	select {
	case res := <-req.reply:
		return res, res.err
	case <-ctx.Done():
		// the worker still completes the request, the result is dropped
		return response{}, ctx.Err()
	}
}

// state is the worker-owned mutable state, never shared
type state struct {
	agg   *aggregate.Aggregate
	cache *viewCache
}

func (s *Svc) run() {
	log := logger.Named("analyzer")
	st := &state{cache: newViewCache(s.cfg.CacheCap)}

	for {
		select {
		case <-s.done:
			return
		case req := <-s.requests:
			req.reply <- s.handle(log, st, req)
		}
	}
}

func (s *Svc) handle(log *logger.Logger, st *state, req request) response {
	switch req.kind {
	case reqInit:
		batch := uuid.NewString()
		st.agg = aggregate.Build(req.init.Shares, req.init.Comments)
		st.cache.clear()
		log.Info().
			Str("batch_id", batch).
			Int("shares", len(req.init.Shares)).
			Int("comments", len(req.init.Comments)).
			Int("events", st.agg.Totals.Total).
			Msg("aggregate built")
		return response{initRes: initResult(st.agg)}

	case reqHydrate:
		agg, err := aggregate.Hydrate(req.raw)
		if err != nil {
			return response{err: err}
		}
		st.agg = agg
		st.cache.clear()
		log.Info().Int("events", agg.Totals.Total).Msg("aggregate hydrated")
		return response{initRes: initResult(agg)}

	case reqQuery:
		if st.agg == nil {
			return response{err: perr.Conflictf("no aggregate loaded, init first")}
		}
		key := req.query.Filters.CacheKey()
		res, ok := st.cache.get(key)
		if !ok {
			v := view.Build(st.agg, req.query.Filters)
			res = dom.QueryResult{View: v, Insights: insight.Generate(v)}
			st.cache.put(key, res)
		}
		res.RequestID = req.query.RequestID
		return response{queryRes: res}

	case reqSnapshot:
		if st.agg == nil {
			return response{err: perr.Conflictf("no aggregate loaded, init first")}
		}
		raw, err := aggregate.Serialize(st.agg)
		return response{raw: raw, err: err}

	case reqClear:
		st.agg = nil
		st.cache.clear()
		return response{}
	}
	return response{err: perr.Internalf("unknown request kind %d", req.kind)}
}

func initResult(agg *aggregate.Aggregate) dom.InitResult {
	return dom.InitResult{
		HasData:     agg.HasData(),
		TopicsTop60: agg.TopTopics(60),
	}
}
