package service

import (
	"context"
	"io"
	"strings"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

// DocumentService implements the read-side use cases: listing, resolving a
// single record, retrieving its content and re-verifying a file against
// the recorded hash.
type DocumentService struct {
	ledger domain.LedgerClient
	store  domain.ContentStore
	logger domain.Logger
}

// NewDocumentService creates the read-side service.
func NewDocumentService(ledgerClient domain.LedgerClient, contentStore domain.ContentStore, logger domain.Logger) *DocumentService {
	return &DocumentService{
		ledger: ledgerClient,
		store:  contentStore,
		logger: logger,
	}
}

// ListOwned returns the records created by an address. The ledger client
// already degrades to an empty list on any failure.
func (s *DocumentService) ListOwned(ctx context.Context, owner string) ([]domain.DocumentRecord, error) {
	return s.ledger.QueryByOwner(ctx, owner)
}

// ListIncoming returns the records naming an address as receiver.
func (s *DocumentService) ListIncoming(ctx context.Context, receiver string) ([]domain.DocumentRecord, error) {
	return s.ledger.QueryByReceiver(ctx, receiver)
}

// Get resolves a record by its identifier from the address's owned and
// incoming documents.
func (s *DocumentService) Get(ctx context.Context, address, id string) (*domain.DocumentRecord, error) {
	owned, err := s.ledger.QueryByOwner(ctx, address)
	if err != nil {
		return nil, err
	}
	for i := range owned {
		if owned[i].ID == id {
			return &owned[i], nil
		}
	}

	incoming, err := s.ledger.QueryByReceiver(ctx, address)
	if err != nil {
		return nil, err
	}
	for i := range incoming {
		if incoming[i].ID == id {
			return &incoming[i], nil
		}
	}

	return nil, apperrors.NewNotFoundError(domain.ErrDocumentNotFound.Error())
}

// Content resolves a record and fetches its bytes from the content store.
// When the store is unreachable the result carries a labeled placeholder
// instead of the document, flagged as unavailable.
func (s *DocumentService) Content(ctx context.Context, address, id string) (*domain.DocumentRecord, domain.FetchResult, error) {
	record, err := s.Get(ctx, address, id)
	if err != nil {
		return nil, domain.FetchResult{}, err
	}

	result, err := s.store.Fetch(ctx, record.ContentID)
	if err != nil {
		return nil, domain.FetchResult{}, err
	}
	return record, result, nil
}

// Verify recomputes a file's digest and compares it with the hash stored
// on the ledger for the record.
func (s *DocumentService) Verify(ctx context.Context, address, id string, file io.Reader) (bool, error) {
	record, err := s.Get(ctx, address, id)
	if err != nil {
		return false, err
	}

	hash, err := HashDocument(file)
	if err != nil {
		return false, err
	}

	match := strings.EqualFold(hash, record.Hash)
	if !match {
		s.logger.Warn("document hash mismatch", "id", id, "expected", record.Hash, "got", hash)
	}
	return match, nil
}
