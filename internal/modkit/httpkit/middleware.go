package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"linkpulse/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext,

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 2 * time.Second}),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
