package httpkit

import (
	"net/http"

	phttp "linkpulse/internal/platform/net/http"
)

// PostJSON mounts a pure JSON handler under POST
// The payload is bound and validated before the handler runs
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, phttp.JSONHandler(h))
}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler and uses the envelope adapter
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}
