package domain

import (
	"context"
	"io"
)

// LedgerClient defines the write and read operations against the remote
// contract-bearing ledger.
type LedgerClient interface {
	// SubmitDocument records a document on the ledger and returns the
	// transaction ID once the remote service reports the submission as
	// accepted. A nil receiver means the document is self-only.
	SubmitDocument(ctx context.Context, contentID, hash, creator string, receiver *string) (string, error)

	// QueryByOwner and QueryByReceiver are read-only simulated calls. They
	// are best effort: any transport or account failure yields an empty
	// list, never an error, so listing views stay functional.
	QueryByOwner(ctx context.Context, owner string) ([]DocumentRecord, error)
	QueryByReceiver(ctx context.Context, receiver string) ([]DocumentRecord, error)
}

// ContentStore defines the content-addressed storage operations.
type ContentStore interface {
	// Pin uploads bytes and returns the identifier assigned by the store.
	Pin(ctx context.Context, fileName string, file io.Reader) (PinResult, error)

	// Fetch retrieves bytes by identifier. An unreachable store produces an
	// unavailable result with a labeled placeholder payload, not an error.
	Fetch(ctx context.Context, contentID string) (FetchResult, error)
}

// SessionStore defines the namespaced key/value persistence backing the
// wallet session.
type SessionStore interface {
	Set(scope, key, value string) error
	Get(scope, key string) (string, bool, error)
	Keys(prefix string) ([]string, error)
	DeleteByPrefix(prefix string) error
	Close() error
}

// SessionService defines the wallet session lifecycle.
type SessionService interface {
	Connect(address string) (*Session, error)
	Current() (*Session, bool)
	Logout() error
}

// UploadService drives the hash, store, ledger-write pipeline for one file.
type UploadService interface {
	Process(ctx context.Context, session *Session, fileName, contentType string, file io.Reader, receiver string) (*UploadAttempt, error)
}

// DocumentService defines the read-side use cases.
type DocumentService interface {
	ListOwned(ctx context.Context, owner string) ([]DocumentRecord, error)
	ListIncoming(ctx context.Context, receiver string) ([]DocumentRecord, error)
	Get(ctx context.Context, address, id string) (*DocumentRecord, error)
	Content(ctx context.Context, address, id string) (*DocumentRecord, FetchResult, error)
	Verify(ctx context.Context, address, id string, file io.Reader) (bool, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetRPCURL() string
	GetNetworkPassphrase() string
	GetContractID() string
	GetRelayURL() string
	GetRelayJWT() string
	GetPinataAPIURL() string
	GetPinataJWT() string
	GetPinataGatewayURL() string
	GetSessionDBPath() string
}
