package http

import (
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestMountProfilerDisabled(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	MountProfiler(r, "/debug", false)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rr.Code != 404 {
		t.Fatalf("disabled profiler status = %d, want 404", rr.Code)
	}
}

func TestMountProfilerEnabled(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	MountProfiler(r, "/debug", true)

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rr.Code != 200 {
		t.Fatalf("pprof index status = %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest("GET", "/debug/pprof/cmdline", nil))
	if rr.Code != 200 {
		t.Fatalf("pprof cmdline status = %d, want 200", rr.Code)
	}
}
