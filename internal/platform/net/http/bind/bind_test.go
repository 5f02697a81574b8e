package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "linkpulse/internal/platform/errors"
)

type filtersIn struct {
	TimeRange string `json:"time_range" validate:"omitempty,max=16"`
	Day       *int   `json:"day"        validate:"omitempty,min=0,max=6"`
	ShareType string `json:"share_type" validate:"omitempty,oneof=all text links media"`
}

func TestParseJSONValid(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/query", strings.NewReader(`{"time_range": "3m", "day": 0}`))
	got, err := ParseJSON[filtersIn](req)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.TimeRange != "3m" || got.Day == nil || *got.Day != 0 {
		t.Fatalf("parsed = %+v", got)
	}
}

func TestParseJSONValidationFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "day too large", body: `{"day": 7}`},
		{name: "day negative", body: `{"day": -1}`},
		{name: "share type not in set", body: `{"share_type": "video"}`},
		{name: "time range too long", body: `{"time_range": "eighteen-months-plus"}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("POST", "/query", strings.NewReader(tc.body))
			_, err := ParseJSON[filtersIn](req)
			if perr.CodeOf(err) != perr.ErrorCodeValidation {
				t.Fatalf("code = %v (err %v), want validation", perr.CodeOf(err), err)
			}
		})
	}
}

func TestParseJSONValidationMessageUsesJSONTag(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/query", strings.NewReader(`{"day": 7}`))
	_, err := ParseJSON[filtersIn](req)
	if err == nil || !strings.Contains(err.Error(), "day") {
		t.Fatalf("message should name the json field, got %v", err)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/query", strings.NewReader(`{"day": `))
	_, err := ParseJSON[filtersIn](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v, want json", perr.CodeOf(err))
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/query", strings.NewReader(`{} {"again": true}`))
	_, err := ParseJSON[filtersIn](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v, want json", perr.CodeOf(err))
	}
}

func TestParseJSONUnknownFieldRejected(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/query", strings.NewReader(`{"nope": 1}`))
	_, err := ParseJSON[filtersIn](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("code = %v, want json", perr.CodeOf(err))
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	t.Parallel()

	// POST with no body is an error by default
	req := httptest.NewRequest("POST", "/query", strings.NewReader(""))
	_, err := ParseJSON[filtersIn](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("post code = %v, want json", perr.CodeOf(err))
	}

	// GET tolerates an empty body and binds the zero value
	req = httptest.NewRequest("GET", "/query", strings.NewReader(""))
	got, err := ParseJSON[filtersIn](req)
	if err != nil || got.TimeRange != "" {
		t.Fatalf("get = %+v, %v", got, err)
	}

	// AllowEmptyBody opts any method in
	req = httptest.NewRequest("POST", "/query", strings.NewReader(""))
	if _, err := ParseJSON[filtersIn](req, JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true, AllowEmptyBody: true}); err != nil {
		t.Fatalf("allow-empty post: %v", err)
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/query", strings.NewReader(`{"share_type": "video"}`))
	_, err := ParseJSON[filtersIn](req)
	if err == nil {
		t.Fatalf("expected a validation error")
	}
	if !strings.Contains(err.Error(), "share_type") {
		t.Fatalf("message = %q, want the share_type field named", err.Error())
	}
}
