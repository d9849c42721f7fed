package browser

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/browserdetect/pkg/clienthints"
)

// Middleware classifies every request from its User-Agent and Client-Hint
// headers and stores the result in the request context. A matching failure
// is logged and the request proceeds unclassified; classification is an
// enrichment, never a gate.
func Middleware(d *Detector, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, err := d.Lookup(r.UserAgent(), clienthints.Parse(r.Header))
			if err != nil {
				if log != nil {
					log.ErrorContext(r.Context(), "browser classification failed",
						slog.String("error", err.Error()))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := SetClientToContext(r.Context(), client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
