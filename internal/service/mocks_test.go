package service

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/fnurozcetin/lexStamp/internal/domain"
)

// Mock implementations for testing

type testLogger struct{}

func (testLogger) Debug(msg string, fields ...interface{})            {}
func (testLogger) Info(msg string, fields ...interface{})             {}
func (testLogger) Warn(msg string, fields ...interface{})             {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}

type mockLedger struct {
	submitFn   func(ctx context.Context, contentID, hash, creator string, receiver *string) (string, error)
	ownedFn    func(ctx context.Context, owner string) ([]domain.DocumentRecord, error)
	incomingFn func(ctx context.Context, receiver string) ([]domain.DocumentRecord, error)

	submitCalls int
}

func (m *mockLedger) SubmitDocument(ctx context.Context, contentID, hash, creator string, receiver *string) (string, error) {
	m.submitCalls++
	if m.submitFn != nil {
		return m.submitFn(ctx, contentID, hash, creator, receiver)
	}
	return "tx-mock", nil
}

func (m *mockLedger) QueryByOwner(ctx context.Context, owner string) ([]domain.DocumentRecord, error) {
	if m.ownedFn != nil {
		return m.ownedFn(ctx, owner)
	}
	return []domain.DocumentRecord{}, nil
}

func (m *mockLedger) QueryByReceiver(ctx context.Context, receiver string) ([]domain.DocumentRecord, error) {
	if m.incomingFn != nil {
		return m.incomingFn(ctx, receiver)
	}
	return []domain.DocumentRecord{}, nil
}

type mockContentStore struct {
	pinFn   func(ctx context.Context, fileName string, file io.Reader) (domain.PinResult, error)
	fetchFn func(ctx context.Context, contentID string) (domain.FetchResult, error)

	pinCalls int
}

func (m *mockContentStore) Pin(ctx context.Context, fileName string, file io.Reader) (domain.PinResult, error) {
	m.pinCalls++
	if m.pinFn != nil {
		return m.pinFn(ctx, fileName, file)
	}
	return domain.PinResult{ContentID: "QmMockCid", Size: 1}, nil
}

func (m *mockContentStore) Fetch(ctx context.Context, contentID string) (domain.FetchResult, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, contentID)
	}
	return domain.FetchResult{Available: true, Data: []byte("%PDF-mock")}, nil
}

type mockSessionStore struct {
	mu     sync.Mutex
	values map[string]string // scope + "\x00" + key
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{values: make(map[string]string)}
}

func (m *mockSessionStore) Set(scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[scope+"\x00"+key] = value
	return nil
}

func (m *mockSessionStore) Get(scope, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[scope+"\x00"+key]
	return value, ok, nil
}

func (m *mockSessionStore) DeleteByPrefix(prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for composite := range m.values {
		key := composite[strings.Index(composite, "\x00")+1:]
		if strings.HasPrefix(key, prefix) {
			delete(m.values, composite)
		}
	}
	return nil
}

func (m *mockSessionStore) Keys(prefix string) ([]string, error) {
	return m.keysWithPrefix(prefix), nil
}

func (m *mockSessionStore) Close() error { return nil }

func (m *mockSessionStore) keysWithPrefix(prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for composite := range m.values {
		key := composite[strings.Index(composite, "\x00")+1:]
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}
