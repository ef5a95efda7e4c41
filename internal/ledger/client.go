package ledger

import (
	"context"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

// Contract methods of the document timestamp contract.
const (
	methodStoreDocument       = "store_document"
	methodDocumentsByOwner    = "get_documents_by_owner"
	methodDocumentsReceivedBy = "get_documents_received_by"
)

const (
	defaultFee     = "100000"
	defaultTimeout = 30
)

// invocation is one contract call, either simulated on the read path or
// signed and submitted through the relay on the write path.
type invocation struct {
	Contract          string  `json:"contract"`
	Method            string  `json:"method"`
	Args              []Value `json:"args"`
	Source            string  `json:"source"`
	Fee               string  `json:"fee"`
	NetworkPassphrase string  `json:"networkPassphrase"`
	TimeoutSeconds    int     `json:"timeout"`
}

// Client implements domain.LedgerClient against a Soroban RPC endpoint and
// a wallet relay.
type Client struct {
	rpc               *rpcClient
	relay             *relayClient
	contractID        string
	networkPassphrase string
	logger            domain.Logger
}

// NewClient validates the configured contract address and wires the RPC
// and relay transports.
func NewClient(config domain.Config, logger domain.Logger) (*Client, error) {
	if err := ValidateContractAddress(config.GetContractID()); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: defaultTimeout * time.Second}
	return &Client{
		rpc: &rpcClient{
			url:        config.GetRPCURL(),
			httpClient: httpClient,
		},
		relay: &relayClient{
			url:        config.GetRelayURL(),
			jwt:        config.GetRelayJWT(),
			httpClient: httpClient,
		},
		contractID:        config.GetContractID(),
		networkPassphrase: config.GetNetworkPassphrase(),
		logger:            logger,
	}, nil
}

// SubmitDocument records a document hash and content identifier on the
// ledger. Address arguments are validated before anything touches the
// network. A named receiver becomes the document's sole expected signer.
func (c *Client) SubmitDocument(ctx context.Context, contentID, hash, creator string, receiver *string) (string, error) {
	if err := ValidateAccountAddress(creator); err != nil {
		return "", err
	}
	if receiver != nil {
		if err := ValidateAccountAddress(*receiver); err != nil {
			return "", err
		}
	}

	hashBytes, err := hex.DecodeString(hash)
	if err != nil {
		return "", apperrors.NewValidationError("invalid document hash", "must be hex encoded")
	}

	receiverArg := Void()
	signers := Vec()
	if receiver != nil {
		receiverArg = Address(*receiver)
		signers = Vec(Address(*receiver))
	}

	inv := c.invocation(methodStoreDocument, creator,
		Bytes(hashBytes),
		Bytes([]byte(contentID)),
		Address(creator),
		receiverArg,
		signers,
	)

	txID, err := c.relay.send(ctx, inv)
	if err != nil {
		return "", err
	}

	c.logger.Info("document submitted to ledger", "tx_id", txID, "ipfs_cid", contentID, "creator", creator)
	return txID, nil
}

// QueryByOwner lists the records created by an address.
func (c *Client) QueryByOwner(ctx context.Context, owner string) ([]domain.DocumentRecord, error) {
	return c.queryDocuments(ctx, methodDocumentsByOwner, owner), nil
}

// QueryByReceiver lists the records naming an address as receiver.
func (c *Client) QueryByReceiver(ctx context.Context, receiver string) ([]domain.DocumentRecord, error) {
	return c.queryDocuments(ctx, methodDocumentsReceivedBy, receiver), nil
}

// queryDocuments runs a read-only simulation and decodes its result. Every
// failure degrades to an empty list with a diagnostic: queries must never
// crash a listing view.
func (c *Client) queryDocuments(ctx context.Context, method, address string) []domain.DocumentRecord {
	if err := ValidateAccountAddress(address); err != nil {
		c.logger.Warn("skipping ledger query for malformed address", "method", method, "reason", err)
		return []domain.DocumentRecord{}
	}

	source, err := c.relay.simulationAccount(ctx)
	if err != nil {
		c.logger.Warn("no simulation account available", "method", method, "reason", err)
		return []domain.DocumentRecord{}
	}

	inv := c.invocation(method, source, Address(address))
	result, err := c.rpc.simulate(ctx, inv)
	if err != nil {
		c.logger.Warn("ledger query failed", "method", method, "address", address, "reason", err)
		return []domain.DocumentRecord{}
	}

	return DecodeRecords(result, c.logger)
}

func (c *Client) invocation(method, source string, args ...Value) invocation {
	return invocation{
		Contract:          c.contractID,
		Method:            method,
		Args:              args,
		Source:            source,
		Fee:               defaultFee,
		NetworkPassphrase: c.networkPassphrase,
		TimeoutSeconds:    defaultTimeout,
	}
}
