package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/testutil"
)

func TestLoggingMiddlewarePreservesValidRequestID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, next)

	req := httptest.NewRequest(http.MethodGet, "/pokedex", nil)
	req.Header.Set("X-Request-ID", "abc-123_XYZ")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seenID != "abc-123_XYZ" {
		t.Fatalf("expected request ID propagated, got %q", seenID)
	}
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123_XYZ" {
		t.Fatalf("expected request ID echoed, got %q", got)
	}
}

func TestLoggingMiddlewareReplacesBadRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, next)

	req := httptest.NewRequest(http.MethodGet, "/pokedex", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	got := rr.Header().Get("X-Request-ID")
	if got == "" || got == "bad id with spaces!" {
		t.Fatalf("expected a generated request ID, got %q", got)
	}
	if !requestIDPattern.MatchString(got) {
		t.Fatalf("generated ID %q does not match the allowed pattern", got)
	}
}

func TestLoggingMiddlewareInjectsContextLogger(t *testing.T) {
	var sawLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = logging.FromContext(r.Context(), nil) != nil
		w.WriteHeader(http.StatusOK)
	})

	logger, buf := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pokedex/pikachu", nil))

	if !sawLogger {
		t.Fatal("expected a request-scoped logger on the context")
	}
	out := buf.String()
	if !strings.Contains(out, "request complete") {
		t.Fatalf("expected completion log, got %q", out)
	}
	if !strings.Contains(out, "/pokedex/pikachu") {
		t.Fatalf("expected path in log, got %q", out)
	}
}

func TestLoggingMiddlewareCapturesStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	logger, buf := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, metrics.NewRecorder(), next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pokedex/missingno", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 passthrough, got %d", rr.Code)
	}
	if !strings.Contains(buf.String(), "status_code=404") {
		t.Fatalf("expected status in log, got %q", buf.String())
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/pokedex", want: "/pokedex"},
		{in: "/health", want: "/health"},
		{in: "/pokedex/pikachu", want: "/pokedex/:name"},
		{in: "/pokedex/mr-mime", want: "/pokedex/:name"},
		{in: "/metrics", want: "/metrics"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := normalizePath(tc.in); got != tc.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRequestIDFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty ID, got %q", got)
	}
}
