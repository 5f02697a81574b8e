package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "linkpulse/internal/platform/errors"
	lumnet "linkpulse/internal/platform/net"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v body=%s", err, rr.Body.String())
	}
	return env
}

func TestHandleSuccessEnvelope(t *testing.T) {
	t.Parallel()

	h := Handle(func(_ *stdhttp.Request) Response {
		return OK(map[string]any{"has_data": true})
	})

	req := httptest.NewRequest("POST", "/activity/init", nil)
	req = req.WithContext(lumnet.WithRequest(req.Context(), "req-1"))
	rr := httptest.NewRecorder()
	h(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	env := decodeEnvelope(t, rr)
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "req-1" {
		t.Fatalf("envelope = %+v", env)
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["has_data"] != true {
		t.Fatalf("data = %v", env.Data)
	}
}

func TestHandleErrorEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "conflict", err: perr.Conflictf("no aggregate loaded"), status: 409},
		{name: "bad json", err: perr.JSONErrf("body is not valid json"), status: 400},
		{name: "invalid argument", err: perr.InvalidArgf("day out of range"), status: 422},
		{name: "unavailable", err: perr.Unavailablef("worker stopped"), status: 503},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := Handle(func(_ *stdhttp.Request) Response { return Error(tc.err) })
			rr := httptest.NewRecorder()
			h(rr, httptest.NewRequest("POST", "/activity/query", nil))

			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			env := decodeEnvelope(t, rr)
			if env.StatusCode != tc.status || env.Error == "" {
				t.Fatalf("envelope = %+v", env)
			}
			if env.Code != perr.CodeOf(tc.err) {
				t.Fatalf("code = %v, want %v", env.Code, perr.CodeOf(tc.err))
			}
		})
	}
}

func TestHandleNoContentHasEmptyBody(t *testing.T) {
	t.Parallel()

	h := Handle(func(_ *stdhttp.Request) Response {
		return Response{Status: stdhttp.StatusNoContent}
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest("DELETE", "/x", nil))

	if rr.Code != 204 || rr.Body.Len() != 0 {
		t.Fatalf("status=%d bodyLen=%d, want 204 with no body", rr.Code, rr.Body.Len())
	}
}

func TestHandleHeaderOverrides(t *testing.T) {
	t.Parallel()

	hdr := stdhttp.Header{}
	hdr.Set("X-Snapshot-Months", "3")
	h := Handle(func(_ *stdhttp.Request) Response {
		return Response{Status: 200, Body: "ok", Header: hdr}
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest("GET", "/activity/aggregate", nil))

	if got := rr.Header().Get("X-Snapshot-Months"); got != "3" {
		t.Fatalf("header = %q, want 3", got)
	}
}

func TestHandleZeroStatusDefaultsTo200(t *testing.T) {
	t.Parallel()

	h := Handle(func(_ *stdhttp.Request) Response { return Response{Body: "fine"} })
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
}
