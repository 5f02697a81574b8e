package httpkit

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "linkpulse/internal/platform/net/http"
)

func newRouter() Router { return phttp.AdaptChi(chi.NewRouter()) }

func tagMiddleware(header, value string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			w.Header().Set(header, value)
			next.ServeHTTP(w, r)
		})
	}
}

func TestMountAPIV1Prefix(t *testing.T) {
	t.Parallel()

	r := newRouter()
	MountAPIV1(r, []func(stdhttp.Handler) stdhttp.Handler{tagMiddleware("X-Scope", "api")}, func(api Router) {
		api.Get("/activity/aggregate", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(200)
		})
	})
	r.Get("/health", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(200) })

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/activity/aggregate", nil))
	if rr.Code != 200 {
		t.Fatalf("prefixed route = %d, want 200", rr.Code)
	}
	if rr.Header().Get("X-Scope") != "api" {
		t.Fatal("scoped middleware missing inside the version prefix")
	}

	// the route is not reachable without the version prefix
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/activity/aggregate", nil))
	if rr.Code != 404 {
		t.Fatalf("unprefixed route = %d, want 404", rr.Code)
	}

	// middleware does not leak to routes outside the scope
	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	if rr.Header().Get("X-Scope") != "" {
		t.Fatal("scoped middleware leaked outside the version prefix")
	}
}

func TestMountAPIStripsLeadingSlash(t *testing.T) {
	t.Parallel()

	r := newRouter()
	MountAPI(r, "/v2", nil, func(api Router) {
		api.Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(204) })
	})

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/api/v2/ping", nil))
	if rr.Code != 204 {
		t.Fatalf("GET /api/v2/ping = %d, want 204", rr.Code)
	}
}

func TestMountUnder(t *testing.T) {
	t.Parallel()

	r := newRouter()
	MountUnder(r, "/activity", []func(stdhttp.Handler) stdhttp.Handler{tagMiddleware("X-Module", "activity")}, func(sub Router) {
		sub.Get("/aggregate", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(200) })
	})
	MountUnder(r, "/meta", nil, func(sub Router) {
		sub.Get("/version", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(200) })
	})

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/activity/aggregate", nil))
	if rr.Code != 200 || rr.Header().Get("X-Module") != "activity" {
		t.Fatalf("activity mount: code=%d module=%q", rr.Code, rr.Header().Get("X-Module"))
	}

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/meta/version", nil))
	if rr.Code != 200 || rr.Header().Get("X-Module") != "" {
		t.Fatalf("meta mount: code=%d module=%q", rr.Code, rr.Header().Get("X-Module"))
	}
}
