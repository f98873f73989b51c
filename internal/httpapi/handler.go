package httpapi

import (
	"net/http"
	"time"

	"github.com/John-Robertt/nodefmt-go/internal/logger"
)

// NewHandler returns the production handler (mux + observability middleware
// + request timeout).
//
// Tests can still use NewMux directly to avoid noisy logs unless needed.
func NewHandler() http.Handler {
	return NewHandlerWithOptions(Options{})
}

func NewHandlerWithOptions(opt Options) http.Handler {
	opt = opt.withDefaults()
	return http.TimeoutHandler(withObservability(NewMuxWithOptions(opt)), opt.FormatTimeout, "timeout\n")
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *statusWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func withObservability(next http.Handler) http.Handler {
	accessLog := logger.WithComponent("httpapi")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		status := sw.status
		if status == 0 {
			status = http.StatusOK
		}

		pattern := r.Pattern
		if pattern == "" {
			// Keep it low-cardinality; never log RawQuery because it may
			// contain user content.
			pattern = r.Method + " " + r.URL.Path
		}

		metricsIncRequest(pattern, status)

		if r.URL.Path != "/healthz" && r.URL.Path != "/metrics" {
			accessLog.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("pattern", pattern).
				Int("status", status).
				Int("bytes", sw.bytes).
				Dur("dur", time.Since(start).Round(time.Millisecond)).
				Msg("request")
		}
	})
}
