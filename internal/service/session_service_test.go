package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

const testContract = "CDEMO" + "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func TestConnect_PersistsSessionUnderNamespace(t *testing.T) {
	store := newMockSessionStore()
	sessions := NewWalletSessionService(store, testContract, testLogger{})

	session, err := sessions.Connect(testAddress)
	require.NoError(t, err)
	assert.Equal(t, testAddress, session.Address)
	assert.True(t, session.IsConnected)

	current, ok := sessions.Current()
	require.True(t, ok)
	assert.Equal(t, testAddress, current.Address)

	raw, ok, err := store.Get(domain.ScopeLocal, domain.KeyUser)
	require.NoError(t, err)
	require.True(t, ok)

	var persisted domain.Session
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, testAddress, persisted.Address)

	// The contract the session was connected against is persisted too.
	contract, ok, err := store.Get(domain.ScopeLocal, domain.KeyContractID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testContract, contract)
}

func TestConnect_RejectsMalformedAddress(t *testing.T) {
	sessions := NewWalletSessionService(newMockSessionStore(), testContract, testLogger{})

	_, err := sessions.Connect("GSHORT")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	_, ok := sessions.Current()
	assert.False(t, ok)
}

func TestConnect_ReplacesPreviousSessionWholesale(t *testing.T) {
	sessions := NewWalletSessionService(newMockSessionStore(), testContract, testLogger{})

	_, err := sessions.Connect(testAddress)
	require.NoError(t, err)
	_, err = sessions.Connect(testReceiver)
	require.NoError(t, err)

	current, ok := sessions.Current()
	require.True(t, ok)
	assert.Equal(t, testReceiver, current.Address)
}

func TestCurrent_ReturnsACopy(t *testing.T) {
	sessions := NewWalletSessionService(newMockSessionStore(), testContract, testLogger{})
	_, err := sessions.Connect(testAddress)
	require.NoError(t, err)

	first, _ := sessions.Current()
	first.Address = "mutated"

	second, _ := sessions.Current()
	assert.Equal(t, testAddress, second.Address)
}

func TestLogout_ClearsEveryNamespacedKey(t *testing.T) {
	store := newMockSessionStore()
	sessions := NewWalletSessionService(store, testContract, testLogger{})

	_, err := sessions.Connect(testAddress)
	require.NoError(t, err)
	require.NotEmpty(t, store.keysWithPrefix(domain.StorageNamespace))

	require.NoError(t, sessions.Logout())

	_, ok := sessions.Current()
	assert.False(t, ok)
	assert.Empty(t, store.keysWithPrefix(domain.StorageNamespace))
}

func TestRestore_RecoversPersistedSession(t *testing.T) {
	store := newMockSessionStore()

	first := NewWalletSessionService(store, testContract, testLogger{})
	_, err := first.Connect(testAddress)
	require.NoError(t, err)

	// A new service over the same store restores the session, as a reload
	// restores from persisted storage.
	second := NewWalletSessionService(store, testContract, testLogger{})
	current, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, testAddress, current.Address)
}

func TestRestore_IgnoresCorruptPersistedSession(t *testing.T) {
	store := newMockSessionStore()
	require.NoError(t, store.Set(domain.ScopeLocal, domain.KeyUser, "{not json"))

	sessions := NewWalletSessionService(store, testContract, testLogger{})
	_, ok := sessions.Current()
	assert.False(t, ok)
}
