package httpkit

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pnet "linkpulse/internal/platform/net"
)

func TestCommonStack(t *testing.T) {
	t.Parallel()

	r := newRouter()
	r.Use(CommonStack()...)
	r.Get("/whoami", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		_, _ = w.Write([]byte(pnet.RequestID(req.Context())))
	})
	r.Get("/boom", func(stdhttp.ResponseWriter, *stdhttp.Request) {
		panic("midstream failure")
	})

	t.Run("request id assigned", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/whoami", nil))
		if rr.Code != 200 || rr.Body.Len() == 0 {
			t.Fatalf("code=%d id=%q", rr.Code, rr.Body.String())
		}
	})

	t.Run("heartbeat", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
		if rr.Code != 200 {
			t.Fatalf("GET /health = %d, want 200", rr.Code)
		}
	})

	t.Run("panic becomes JSON 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/boom", nil))
		if rr.Code != 500 {
			t.Fatalf("GET /boom = %d, want 500", rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Fatalf("content type = %q", ct)
		}
		var body struct {
			StatusCode int `json:"status_code"`
		}
		if err := stdjson.NewDecoder(rr.Body).Decode(&body); err != nil || body.StatusCode != 500 {
			t.Fatalf("panic body: err=%v status=%d", err, body.StatusCode)
		}
	})

	t.Run("no-cache headers", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/whoami", nil))
		if cc := rr.Header().Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
			t.Fatalf("Cache-Control = %q", cc)
		}
	})
}
