package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	"github.com/fnurozcetin/lexStamp/internal/ledger"
	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

// WalletSessionService holds the acting wallet identity and persists it
// under the fixed key namespace. It is constructed once and injected into
// everything that needs the session; there is no ambient global.
type WalletSessionService struct {
	store      domain.SessionStore
	contractID string
	logger     domain.Logger

	mu      sync.RWMutex
	current *domain.Session
}

// NewWalletSessionService creates the service and restores a persisted
// session if one survives in the durable store. The contract ID is
// persisted alongside each connected session so a later boot knows which
// contract the stored identity was bound to.
func NewWalletSessionService(store domain.SessionStore, contractID string, logger domain.Logger) *WalletSessionService {
	s := &WalletSessionService{
		store:      store,
		contractID: contractID,
		logger:     logger,
	}
	s.restore()
	return s
}

func (s *WalletSessionService) restore() {
	raw, ok, err := s.store.Get(domain.ScopeLocal, domain.KeyUser)
	if err != nil {
		s.logger.Warn("could not read persisted session", "reason", err)
		return
	}
	if !ok {
		return
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Warn("discarding unreadable persisted session", "reason", err)
		return
	}
	if !session.IsConnected || session.Address == "" {
		return
	}

	s.mu.Lock()
	s.current = &session
	s.mu.Unlock()
	s.logger.Info("restored wallet session", "address", session.Address)
}

// Connect validates the wallet address, replaces the in-memory session
// wholesale and persists it under the key namespace.
func (s *WalletSessionService) Connect(address string) (*domain.Session, error) {
	if err := ledger.ValidateAccountAddress(address); err != nil {
		return nil, err
	}

	session := &domain.Session{
		Address:     address,
		IsConnected: true,
		ConnectedAt: time.Now().UTC(),
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode session", err)
	}
	if err := s.store.Set(domain.ScopeLocal, domain.KeyUser, string(raw)); err != nil {
		return nil, apperrors.NewInternalError("failed to persist session", err)
	}
	if err := s.store.Set(domain.ScopeSession, domain.KeyKeyID, address); err != nil {
		return nil, apperrors.NewInternalError("failed to persist session key", err)
	}
	if s.contractID != "" {
		if err := s.store.Set(domain.ScopeLocal, domain.KeyContractID, s.contractID); err != nil {
			return nil, apperrors.NewInternalError("failed to persist contract binding", err)
		}
	}

	// Full replace, never a partial patch.
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	s.logger.Info("wallet connected", "address", address)
	return session, nil
}

// Current returns a copy of the connected session, if any.
func (s *WalletSessionService) Current() (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	copied := *s.current
	return &copied, true
}

// Logout clears the in-memory session and removes every persisted key
// under the namespace prefix, in both the durable and session scopes.
func (s *WalletSessionService) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	keys, err := s.store.Keys(domain.StorageNamespace)
	if err != nil {
		s.logger.Warn("could not list persisted session keys", "reason", err)
	}
	if err := s.store.DeleteByPrefix(domain.StorageNamespace); err != nil {
		return apperrors.NewInternalError("failed to clear persisted session", err)
	}

	s.logger.Info("wallet session cleared", "keys_removed", len(keys))
	return nil
}
