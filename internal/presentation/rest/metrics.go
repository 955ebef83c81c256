package rest

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithRequestCounter wraps a handler and counts every served request on the
// given instrument, labeled by HTTP method.
func WithRequestCounter(counter metric.Int64Counter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counter.Add(r.Context(), 1, metric.WithAttributes(
			attribute.String("method", r.Method),
		))
		next.ServeHTTP(w, r)
	})
}
