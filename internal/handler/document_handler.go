// Package handler provides HTTP handlers for the API.
package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

// Marker header set when the content store could not serve a document and
// a placeholder payload is returned instead.
const headerContentUnavailable = "X-Content-Unavailable"

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	uploads     domain.UploadService
	documents   domain.DocumentService
	logger      domain.Logger
	maxFileSize int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(uploads domain.UploadService, documents domain.DocumentService, logger domain.Logger, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		uploads:     uploads,
		documents:   documents,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// Upload runs the notarization pipeline for a single multipart file. The
// response always carries the attempt's stage states, completed or not, so
// the client can render per-stage progress and failure.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "wallet session required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "a single file field is required")
		return
	}
	defer file.Close()

	receiver := r.FormValue("receiver")

	attempt, err := h.uploads.Process(r.Context(), session, header.Filename, header.Header.Get("Content-Type"), file, receiver)
	if err != nil {
		if attempt == nil {
			writeAppError(w, err)
			return
		}
		// A started attempt reports its stage states alongside the error.
		writeJSON(w, apperrors.GetStatusCode(err), map[string]interface{}{
			"attempt": attempt,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"attempt": attempt})
}

// List returns the session address's own documents with a total count.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "wallet session required")
		return
	}

	documents, err := h.documents.ListOwned(r.Context(), session.Address)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if documents == nil {
		documents = make([]domain.DocumentRecord, 0)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documents": documents,
		"count":     len(documents),
	})
}

// Incoming returns the documents naming the session address as receiver.
func (h *DocumentHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "wallet session required")
		return
	}

	documents, err := h.documents.ListIncoming(r.Context(), session.Address)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if documents == nil {
		documents = make([]domain.DocumentRecord, 0)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documents": documents,
		"count":     len(documents),
	})
}

// Get resolves a single document record by identifier.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "wallet session required")
		return
	}

	id := mux.Vars(r)["id"]
	record, err := h.documents.Get(r.Context(), session.Address, id)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Content streams the document's bytes from the content store. When the
// store is unreachable a placeholder body is served with the
// unavailability marker header so the viewer can render a cannot-preview
// state instead of failing.
func (h *DocumentHandler) Content(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "wallet session required")
		return
	}

	id := mux.Vars(r)["id"]
	record, result, err := h.documents.Content(r.Context(), session.Address, id)
	if err != nil {
		writeAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	if !result.Available {
		w.Header().Set(headerContentUnavailable, "true")
	}
	w.Header().Set("Content-Disposition", `inline; filename="`+record.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

// Verify recomputes an uploaded file's digest and compares it with the
// hash recorded on the ledger.
func (h *DocumentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "wallet session required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "a single file field is required")
		return
	}
	defer file.Close()

	id := mux.Vars(r)["id"]
	match, err := h.documents.Verify(r.Context(), session.Address, id, file)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"match": match})
}
