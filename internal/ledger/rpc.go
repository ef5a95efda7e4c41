package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

// rpcClient speaks JSON-RPC 2.0 to the Soroban RPC endpoint. Only the
// read path goes through it; writes travel through the signing relay.
type rpcClient struct {
	url        string
	httpClient *http.Client
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type simulateParams struct {
	Transaction invocation `json:"transaction"`
	// Ask the service for JSON-mode values instead of base64 XDR blobs.
	XDRFormat string `json:"xdrFormat"`
}

type simulateResult struct {
	Error   string `json:"error,omitempty"`
	Results []struct {
		ReturnValue Value `json:"returnValueJson"`
	} `json:"results"`
	LatestLedger int64 `json:"latestLedger"`
}

func (c *rpcClient) call(ctx context.Context, method string, params, result interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return apperrors.NewInternalError("failed to encode rpc request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewInternalError("failed to build rpc request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewNetworkError("ledger rpc unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewNetworkError("ledger rpc returned non-200 status", fmt.Errorf("status %d", resp.StatusCode))
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return apperrors.NewDecodingError("malformed rpc response", err)
	}
	if rpcResp.Error != nil {
		return apperrors.NewNetworkError("ledger rpc rejected the call", rpcResp.Error)
	}

	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return apperrors.NewDecodingError("malformed rpc result", err)
		}
	}
	return nil
}

// simulate runs a read-only invocation and returns its value. No state is
// committed and no fee is charged; the source account only satisfies the
// simulation's fee-payer requirement.
func (c *rpcClient) simulate(ctx context.Context, inv invocation) (Value, error) {
	var result simulateResult
	if err := c.call(ctx, "simulateTransaction", simulateParams{Transaction: inv, XDRFormat: "json"}, &result); err != nil {
		return Value{}, err
	}
	if result.Error != "" {
		return Value{}, apperrors.NewDecodingError("simulation failed", fmt.Errorf("%s", result.Error))
	}
	if len(result.Results) == 0 {
		return Value{}, apperrors.NewDecodingError("simulation returned no result", nil)
	}
	return result.Results[0].ReturnValue, nil
}
