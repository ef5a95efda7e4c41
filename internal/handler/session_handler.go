package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fnurozcetin/lexStamp/internal/domain"
)

// SessionHandler handles wallet session HTTP requests
type SessionHandler struct {
	sessions domain.SessionService
	logger   domain.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions domain.SessionService, logger domain.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

type connectRequest struct {
	Address string `json:"address"`
}

// Connect stores the connected wallet address for this client.
func (h *SessionHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Address == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	session, err := h.sessions.Connect(req.Address)
	if err != nil {
		h.logger.Warn("wallet connect refused", "reason", err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Get returns the current session, if one is connected.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Current()
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrSessionNotConnected.Error())
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Logout clears the session and every persisted key under the namespace.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(); err != nil {
		h.logger.Error("logout failed", err)
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
