package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "linkpulse/internal/platform/net"
)

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	t.Parallel()

	var got string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = pnet.RequestID(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if got == "" {
		t.Fatalf("expected a generated request id")
	}
}

func TestHeartbeat(t *testing.T) {
	t.Parallel()

	h := Heartbeat("/health")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("heartbeat status = %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/other", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("non-heartbeat status = %d, want 404", rr.Code)
	}
}

func TestCORSDefaultsAnswerPreflight(t *testing.T) {
	t.Parallel()

	h := CORS(CORSOptions{AllowedOrigins: []string{"*"}})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest("OPTIONS", "/api/v1/activity/query", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if allow := rr.Header().Get("Access-Control-Allow-Methods"); allow == "" {
		t.Fatalf("preflight carried no allowed methods, headers=%v", rr.Header())
	}
}

func TestNoCacheSetsHeaders(t *testing.T) {
	t.Parallel()

	h := NoCache()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if cc := rr.Header().Get("Cache-Control"); cc == "" {
		t.Fatalf("expected Cache-Control to be set")
	}
}
