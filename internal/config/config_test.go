package config

import (
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SERVER_PORT", "LOG_LEVEL", "MAX_FILE_SIZE",
		"SOROBAN_RPC_URL", "NETWORK_PASSPHRASE", "CONTRACT_ID",
		"RELAY_URL", "RELAY_JWT", "PINATA_API_URL", "PINATA_JWT",
		"PINATA_GATEWAY_URL", "SESSION_DB_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	if got := cfg.GetServerPort(); got != "8080" {
		t.Errorf("GetServerPort() = %q, want 8080", got)
	}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want info", got)
	}
	if got := cfg.GetMaxFileSize(); got != 25*1024*1024 {
		t.Errorf("GetMaxFileSize() = %d, want %d", got, 25*1024*1024)
	}
	if got := cfg.GetRPCURL(); got != "https://soroban-testnet.stellar.org" {
		t.Errorf("GetRPCURL() = %q", got)
	}
	if got := cfg.GetNetworkPassphrase(); got != "Test SDF Network ; September 2015" {
		t.Errorf("GetNetworkPassphrase() = %q", got)
	}
	if got := cfg.GetPinataAPIURL(); got != "https://api.pinata.cloud" {
		t.Errorf("GetPinataAPIURL() = %q", got)
	}
	if got := cfg.GetPinataGatewayURL(); got != "https://gateway.pinata.cloud" {
		t.Errorf("GetPinataGatewayURL() = %q", got)
	}
	if got := cfg.GetSessionDBPath(); got != "./session.db" {
		t.Errorf("GetSessionDBPath() = %q", got)
	}
	if got := cfg.GetContractID(); got != "" {
		t.Errorf("GetContractID() = %q, want empty", got)
	}
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("SOROBAN_RPC_URL", "https://rpc.example.test")
	t.Setenv("CONTRACT_ID", "CDEMOAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	t.Setenv("RELAY_URL", "https://relay.example.test")
	t.Setenv("SESSION_DB_PATH", "/tmp/sessions.db")

	cfg := NewConfig()

	if got := cfg.GetServerPort(); got != "9090" {
		t.Errorf("GetServerPort() = %q, want 9090", got)
	}
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", got)
	}
	if got := cfg.GetMaxFileSize(); got != 1048576 {
		t.Errorf("GetMaxFileSize() = %d, want 1048576", got)
	}
	if got := cfg.GetRPCURL(); got != "https://rpc.example.test" {
		t.Errorf("GetRPCURL() = %q", got)
	}
	if got := cfg.GetRelayURL(); got != "https://relay.example.test" {
		t.Errorf("GetRelayURL() = %q", got)
	}
	if got := cfg.GetSessionDBPath(); got != "/tmp/sessions.db" {
		t.Errorf("GetSessionDBPath() = %q", got)
	}
}

func TestNewConfig_PortTakesPrecedence(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("SERVER_PORT", "9090")

	cfg := NewConfig()
	if got := cfg.GetServerPort(); got != "3000" {
		t.Errorf("GetServerPort() = %q, want 3000", got)
	}
}

func TestNewConfig_IgnoresMalformedFileSize(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")

	cfg := NewConfig()
	if got := cfg.GetMaxFileSize(); got != 25*1024*1024 {
		t.Errorf("GetMaxFileSize() = %d, want default", got)
	}
}
