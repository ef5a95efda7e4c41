package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

type contextKey string

const sessionContextKey contextKey = "session"

// GetSessionFromContext extracts the connected wallet session from request context
func GetSessionFromContext(r *http.Request) (*domain.Session, bool) {
	session, ok := r.Context().Value(sessionContextKey).(*domain.Session)
	return session, ok
}

func withSession(r *http.Request, session *domain.Session) *http.Request {
	ctx := context.WithValue(r.Context(), sessionContextKey, session)
	return r.WithContext(ctx)
}

// writeJSON writes a JSON response (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps an application error onto the HTTP response.
func writeAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		writeJSON(w, appErr.StatusCode, appErr)
		return
	}
	writeError(w, apperrors.GetStatusCode(err), err.Error())
}
