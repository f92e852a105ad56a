package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware caps every local API request with a deadline; the presentation
// layer polls on its own schedule and must never hang on a stuck handler.
func Middleware(timout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
