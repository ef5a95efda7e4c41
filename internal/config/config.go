package config

import (
	"os"
	"strconv"

	"github.com/fnurozcetin/lexStamp/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort       string
	LogLevel         string
	MaxFileSize      int64
	RPCURL           string
	NetworkPass      string
	ContractID       string
	RelayURL         string
	RelayJWT         string
	PinataAPIURL     string
	PinataJWT        string
	PinataGatewayURL string
	SessionDBPath    string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// PaaS runtimes provide the listening port via PORT; keep
		// SERVER_PORT for local/dev compatibility.
		ServerPort:       getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		MaxFileSize:      getEnvInt64OrDefault("MAX_FILE_SIZE", 25*1024*1024), // 25MB default
		RPCURL:           getEnvOrDefault("SOROBAN_RPC_URL", "https://soroban-testnet.stellar.org"),
		NetworkPass:      getEnvOrDefault("NETWORK_PASSPHRASE", "Test SDF Network ; September 2015"),
		ContractID:       getEnvOrDefault("CONTRACT_ID", ""),
		RelayURL:         getEnvOrDefault("RELAY_URL", ""),
		RelayJWT:         getEnvOrDefault("RELAY_JWT", ""),
		PinataAPIURL:     getEnvOrDefault("PINATA_API_URL", "https://api.pinata.cloud"),
		PinataJWT:        getEnvOrDefault("PINATA_JWT", ""),
		PinataGatewayURL: getEnvOrDefault("PINATA_GATEWAY_URL", "https://gateway.pinata.cloud"),
		SessionDBPath:    getEnvOrDefault("SESSION_DB_PATH", "./session.db"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetRPCURL returns the Soroban RPC endpoint
func (c *AppConfig) GetRPCURL() string {
	return c.RPCURL
}

// GetNetworkPassphrase returns the ledger network passphrase
func (c *AppConfig) GetNetworkPassphrase() string {
	return c.NetworkPass
}

// GetContractID returns the document contract address
func (c *AppConfig) GetContractID() string {
	return c.ContractID
}

// GetRelayURL returns the wallet relay endpoint
func (c *AppConfig) GetRelayURL() string {
	return c.RelayURL
}

// GetRelayJWT returns the wallet relay credential
func (c *AppConfig) GetRelayJWT() string {
	return c.RelayJWT
}

// GetPinataAPIURL returns the pinning service endpoint
func (c *AppConfig) GetPinataAPIURL() string {
	return c.PinataAPIURL
}

// GetPinataJWT returns the pinning service credential
func (c *AppConfig) GetPinataJWT() string {
	return c.PinataJWT
}

// GetPinataGatewayURL returns the content retrieval gateway
func (c *AppConfig) GetPinataGatewayURL() string {
	return c.PinataGatewayURL
}

// GetSessionDBPath returns the path of the session store database
func (c *AppConfig) GetSessionDBPath() string {
	return c.SessionDBPath
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
