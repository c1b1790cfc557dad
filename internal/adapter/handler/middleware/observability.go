package middleware

import (
	"net/http"
	"time"

	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/observability"
)

// UnmatchedRoute labels requests for paths that no handler is registered on.
const UnmatchedRoute = "unmatched"

// Observability records HTTP metrics for requests.
// Only the given routes are used as the http.route label; any other path is
// recorded as UnmatchedRoute so scanners cannot grow the series count.
func Observability(metrics *observability.Metrics, routes ...string) Middleware {
	known := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		known[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			metrics.HTTPRequestsActive.Add(r.Context(), 1)
			defer metrics.HTTPRequestsActive.Add(r.Context(), -1)

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			route := r.URL.Path
			if _, ok := known[route]; !ok {
				route = UnmatchedRoute
			}

			metrics.RecordHTTPRequest(
				r.Context(),
				r.Method,
				route,
				rw.statusCode,
				time.Since(start),
			)
		})
	}
}
