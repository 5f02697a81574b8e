package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCode(999), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		tc := tc
		if got := HTTPStatusCode(tc.code); got != tc.want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWrappingAndCodeOf(t *testing.T) {
	t.Parallel()

	cause := stderrs.New("csv column missing")
	err := Wrapf(cause, ErrorCodeInvalidArgument, "read shares")

	if CodeOf(err) != ErrorCodeInvalidArgument {
		t.Fatalf("CodeOf = %v", CodeOf(err))
	}
	if !IsCode(err, ErrorCodeInvalidArgument) {
		t.Fatalf("IsCode should match the wrap code")
	}
	if err.Error() != "read shares: csv column missing" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if Root(err) != cause {
		t.Fatalf("Root should return the deepest cause")
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("errors.Is should see through the wrap")
	}
}

func TestCodeOfForeignError(t *testing.T) {
	t.Parallel()

	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("foreign errors default to unknown")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatalf("nil defaults to unknown")
	}
}

func TestSugarConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{name: "conflict", err: Conflictf("no aggregate loaded"), code: ErrorCodeConflict},
		{name: "json", err: JSONErrf("invalid JSON"), code: ErrorCodeJSON},
		{name: "invalid arg", err: InvalidArgf("missing column %q", "Date"), code: ErrorCodeInvalidArgument},
		{name: "unavailable", err: Unavailablef("worker stopped"), code: ErrorCodeUnavailable},
		{name: "not found", err: NotFoundf("month %s", "2025-01"), code: ErrorCodeNotFound},
		{name: "panic", err: PanicErrf("panic recovered"), code: ErrorCodePanic},
		{name: "internal", err: Internalf("boom"), code: ErrorCodeUnknown},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if !IsCode(tc.err, tc.code) {
				t.Fatalf("code = %v, want %v", CodeOf(tc.err), tc.code)
			}
		})
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v, want zero", w)
	}

	w := WireFrom(Conflictf("no aggregate loaded"))
	if w.Code != ErrorCodeConflict || w.Message != "no aggregate loaded" {
		t.Fatalf("wire = %+v", w)
	}

	w = WireFrom(stderrs.New("plain"))
	if w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("foreign wire = %+v", w)
	}
}

func TestWithField(t *testing.T) {
	t.Parallel()

	base := InvalidArgf("missing column")
	withField := WithField(base, "ShareCommentary")

	e, ok := As(withField)
	if !ok || e.Field() != "ShareCommentary" {
		t.Fatalf("WithField = %+v", e)
	}
	// copy-on-write leaves the original untouched
	if orig, _ := As(base); orig.Field() != "" {
		t.Fatalf("original mutated: %+v", orig)
	}
	if w := e.ToWire(); w.Field != "ShareCommentary" {
		t.Fatalf("wire field = %q", w.Field)
	}

	// foreign errors pass through unchanged
	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatalf("foreign error should pass through")
	}
}

func TestHTTPStatusOfError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(Conflictf("x")); got != http.StatusConflict {
		t.Fatalf("HTTPStatus = %d", got)
	}
	if got := HTTPStatus(stderrs.New("x")); got != http.StatusInternalServerError {
		t.Fatalf("foreign HTTPStatus = %d", got)
	}
}
