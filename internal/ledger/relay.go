package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

// Submission statuses reported by the relay. Pending and duplicate both
// count as accepted: duplicate means the ledger already saw this exact
// transaction.
const (
	statusPending   = "PENDING"
	statusDuplicate = "DUPLICATE"
)

// relayClient talks to the wallet relay service that signs an invocation
// with the session's passkey wallet and forwards it to the network.
type relayClient struct {
	url        string
	jwt        string
	httpClient *http.Client
}

type relaySendResponse struct {
	Status string `json:"status"`
	Hash   string `json:"hash"`
}

type relayAccountResponse struct {
	AccountID string `json:"account_id"`
}

// send hands an invocation to the relay for signing and submission. It
// returns the transaction hash once the network reports the submission as
// accepted.
func (c *relayClient) send(ctx context.Context, inv invocation) (string, error) {
	body, err := json.Marshal(map[string]invocation{"tx": inv})
	if err != nil {
		return "", apperrors.NewInternalError("failed to encode relay request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.NewInternalError("failed to build relay request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewNetworkError("wallet relay unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", apperrors.NewAuthenticationError("wallet relay rejected the credential")
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewNetworkError("wallet relay returned non-200 status", fmt.Errorf("status %d", resp.StatusCode))
	}

	var sendResp relaySendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return "", apperrors.NewDecodingError("malformed relay response", err)
	}

	switch sendResp.Status {
	case statusPending, statusDuplicate:
		return sendResp.Hash, nil
	default:
		return "", apperrors.NewSubmissionError("transaction failed", sendResp.Status)
	}
}

// simulationAccount returns an account the read path can name as fee payer.
// Simulations charge nothing, so any account the relay hands out will do.
func (c *relayClient) simulationAccount(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/account", nil)
	if err != nil {
		return "", apperrors.NewInternalError("failed to build relay account request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewNetworkError("wallet relay unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewNetworkError("wallet relay returned non-200 status", fmt.Errorf("status %d", resp.StatusCode))
	}

	var accountResp relayAccountResponse
	if err := json.NewDecoder(resp.Body).Decode(&accountResp); err != nil {
		return "", apperrors.NewDecodingError("malformed relay account response", err)
	}
	if accountResp.AccountID == "" {
		return "", apperrors.NewDecodingError("relay returned empty account", nil)
	}
	return accountResp.AccountID, nil
}
