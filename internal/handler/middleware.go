package handler

import (
	"net/http"

	"github.com/fnurozcetin/lexStamp/internal/domain"
)

// SessionMiddleware requires a connected wallet session and injects it
// into the request context. Without one, write routes are refused before
// any work happens.
func SessionMiddleware(sessions domain.SessionService, logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := sessions.Current()
			if !ok || !session.IsConnected {
				logger.Debug("request refused: no connected wallet session", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "wallet session required")
				return
			}
			next.ServeHTTP(w, withSession(r, session))
		})
	}
}
