package domain

import "errors"

// Domain errors
var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrSessionNotConnected = errors.New("wallet session not connected")
	ErrUploadInFlight      = errors.New("an upload is already in progress")
)
