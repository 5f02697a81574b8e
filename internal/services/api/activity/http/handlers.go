// Package http provides http transport for the activity analyzer
package http

import (
	"encoding/json"
	"io"
	stdhttp "net/http"

	"linkpulse/internal/modkit/httpkit"
	perr "linkpulse/internal/platform/errors"
	adom "linkpulse/internal/services/analyzer/domain"
	"linkpulse/internal/services/api/activity/domain"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, svc adom.ServicePort) {
	h := &handlers{svc: svc}

	// full ingestion from raw export records
	httpkit.PostJSON[domain.InitRequest](r, "/init", h.init)

	// rehydrate a previously serialized aggregate without recomputation
	r.Post("/hydrate", h.hydrate)

	// filtered view plus insights
	httpkit.PostJSON[domain.QueryRequest](r, "/query", h.query)

	// drop all worker state
	httpkit.Post(r, "/clear", h.clear)

	// current serialized aggregate, persistence is the caller's concern
	r.Get("/aggregate", h.aggregate)
}

type handlers struct{ svc adom.ServicePort }

// swagger:route POST /activity/init Activity activityInit
// @Summary Ingest raw share and comment records
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.InitRequest true "Raw records"
// @Success 200 {object} domain.InitResponse "ok"
// @Router /activity/init [post]
func (h *handlers) init(r *stdhttp.Request, in domain.InitRequest) (any, error) {
	return h.svc.Init(r.Context(), adom.InitInput{Shares: in.Shares, Comments: in.Comments})
}

// swagger:route POST /activity/query Activity activityQuery
// @Summary Build a filtered view with insights
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.QueryRequest true "Query"
// @Success 200 {object} domain.QueryResponse "ok"
// @Router /activity/query [post]
func (h *handlers) query(r *stdhttp.Request, in domain.QueryRequest) (any, error) {
	return h.svc.Query(r.Context(), adom.QueryInput{RequestID: in.RequestID, Filters: in.Filters})
}

func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	if err := h.svc.Clear(r.Context()); err != nil {
		return nil, err
	}
	return map[string]any{}, nil
}

// hydrate reads the serialized aggregate straight from the body, the
// payload is the aggregate itself rather than a wrapper object
func (h *handlers) hydrate(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	httpkit.Call(func(r *stdhttp.Request) (any, error) {
		raw, err := io.ReadAll(stdhttp.MaxBytesReader(w, r.Body, 32<<20))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "read body")
		}
		if !json.Valid(raw) {
			return nil, perr.JSONErrf("body is not valid json")
		}
		return h.svc.Hydrate(r.Context(), raw)
	})(w, r)
}

// aggregate streams the worker's serialized aggregate back to the caller
func (h *handlers) aggregate(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	httpkit.Call(func(r *stdhttp.Request) (any, error) {
		raw, err := h.svc.Snapshot(r.Context())
		if err != nil {
			return nil, err
		}
		return json.RawMessage(raw), nil
	})(w, r)
}
