package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMux_Healthz(t *testing.T) {
	mux := NewMux()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != "ok\n" {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestMux_Index(t *testing.T) {
	mux := NewMux()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content-type = %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "/api/format") {
		t.Fatalf("index page should document /api/format")
	}
}

func TestMux_Metrics(t *testing.T) {
	metricsIncRequest("POST /api/format", http.StatusOK)
	metricsIncAppError("parse_nodes", "NODES_PARSE_ERROR")

	mux := NewMux()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"nodefmt_http_requests_total ",
		`nodefmt_http_requests_by_pattern_total{pattern="POST /api/format",status="200"}`,
		`nodefmt_app_errors_total{stage="parse_nodes",code="NODES_PARSE_ERROR"}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %q:\n%s", want, body)
		}
	}
}

func TestMux_FormatRequiresPOST(t *testing.T) {
	mux := NewMux()
	req := httptest.NewRequest(http.MethodGet, "/api/format", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestPromLabelEscape(t *testing.T) {
	if got := promLabelEscape("a\"b\\c\nd"); got != "a\\\"b\\\\c\\nd" {
		t.Fatalf("escape = %q", got)
	}
}
