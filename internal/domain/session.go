package domain

import "time"

// Storage namespace shared by every persisted session key. Logout deletes
// by this prefix in both the durable and session-scoped stores.
const (
	StorageNamespace = "ssd:"

	KeyUser       = StorageNamespace + "user"
	KeyKeyID      = StorageNamespace + "keyId"
	KeyContractID = StorageNamespace + "contractId"
)

// Storage scopes. The session scope is wiped every time the store is
// opened; the local scope survives restarts.
const (
	ScopeLocal   = "local"
	ScopeSession = "session"
)

// Session holds the connected wallet identity. Mutation is always a full
// replace through connect or logout, never a partial patch.
type Session struct {
	Address     string    `json:"address"`
	IsConnected bool      `json:"is_connected"`
	ConnectedAt time.Time `json:"connected_at"`
}
