package config

import (
	"fmt"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	"github.com/fnurozcetin/lexStamp/internal/ledger"
	"github.com/fnurozcetin/lexStamp/internal/service"
	"github.com/fnurozcetin/lexStamp/internal/session"
	"github.com/fnurozcetin/lexStamp/internal/store"
	"github.com/fnurozcetin/lexStamp/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config domain.Config
	Logger domain.Logger

	SessionStore domain.SessionStore
	LedgerClient domain.LedgerClient
	ContentStore domain.ContentStore

	SessionService  domain.SessionService
	UploadService   domain.UploadService
	DocumentService domain.DocumentService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	sessionStore, err := session.NewStore(config.GetSessionDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	ledgerClient, err := ledger.NewClient(config, appLogger)
	if err != nil {
		sessionStore.Close()
		return nil, fmt.Errorf("failed to create ledger client: %w", err)
	}

	contentStore := store.NewPinataClient(config, appLogger)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		SessionStore:    sessionStore,
		LedgerClient:    ledgerClient,
		ContentStore:    contentStore,
		SessionService:  service.NewWalletSessionService(sessionStore, config.GetContractID(), appLogger),
		UploadService:   service.NewUploadService(ledgerClient, contentStore, appLogger),
		DocumentService: service.NewDocumentService(ledgerClient, contentStore, appLogger),
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.SessionStore != nil {
		return c.SessionStore.Close()
	}
	return nil
}
