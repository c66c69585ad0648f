package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/debtwise/debtwise/internal/infrastructure/metrics"
)

// Metrics middleware records HTTP request counts and latency.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		m := metrics.Default()
		m.HTTPRequests.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// resource segments whose following path element is an ID.
var idResources = map[string]bool{
	"debts":    true,
	"incomes":  true,
	"expenses": true,
}

// normalizePath collapses resource IDs so metric labels stay low-cardinality:
// /api/v1/debts/01ABC -> /api/v1/debts/:id.
func normalizePath(path string) string {
	segments := strings.Split(path, "/")
	for i := 0; i < len(segments)-1; i++ {
		if idResources[segments[i]] && segments[i+1] != "" && segments[i+1] != "reorder" {
			segments[i+1] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
