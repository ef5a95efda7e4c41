// Package store implements the content-addressed storage client against a
// Pinata-style IPFS pinning service.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/fnurozcetin/lexStamp/internal/domain"
	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

const (
	pinEndpoint = "/pinning/pinFileToIPFS"
	gatewayPath = "/ipfs/"
)

// PinataClient implements domain.ContentStore.
type PinataClient struct {
	apiURL     string
	gatewayURL string
	jwt        string
	httpClient *http.Client
	logger     domain.Logger
}

// NewPinataClient creates a content store client from configuration.
func NewPinataClient(config domain.Config, logger domain.Logger) *PinataClient {
	return &PinataClient{
		apiURL:     strings.TrimSuffix(config.GetPinataAPIURL(), "/"),
		gatewayURL: strings.TrimSuffix(config.GetPinataGatewayURL(), "/"),
		jwt:        config.GetPinataJWT(),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
	PinSize  int64  `json:"PinSize"`
}

// Pin uploads a file as a single-file form and returns the content
// identifier the service assigned. Failures propagate so the upload
// pipeline can mark its store stage as errored.
func (c *PinataClient) Pin(ctx context.Context, fileName string, file io.Reader) (domain.PinResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return domain.PinResult{}, apperrors.NewInternalError("failed to build upload form", err)
	}
	size, err := io.Copy(part, file)
	if err != nil {
		return domain.PinResult{}, apperrors.NewProcessingError("failed to read file for upload", err)
	}
	if err := writer.Close(); err != nil {
		return domain.PinResult{}, apperrors.NewInternalError("failed to finalize upload form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+pinEndpoint, &body)
	if err != nil {
		return domain.PinResult{}, apperrors.NewInternalError("failed to build pin request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.PinResult{}, apperrors.NewNetworkError("content store unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return domain.PinResult{}, apperrors.NewAuthenticationError("content store rejected the credential")
	}
	if resp.StatusCode != http.StatusOK {
		return domain.PinResult{}, apperrors.NewNetworkError("content store upload failed", fmt.Errorf("status %d", resp.StatusCode))
	}

	var pinResp pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinResp); err != nil {
		return domain.PinResult{}, apperrors.NewDecodingError("malformed pin response", err)
	}
	if pinResp.IpfsHash == "" {
		return domain.PinResult{}, apperrors.NewDecodingError("pin response missing content identifier", nil)
	}

	c.logger.Info("file pinned to content store", "ipfs_cid", pinResp.IpfsHash, "size", size)
	return domain.PinResult{ContentID: pinResp.IpfsHash, Size: size}, nil
}

// Fetch retrieves stored bytes by identifier from the gateway. An
// unreachable gateway degrades to an explicit unavailable result carrying
// a labeled placeholder, never an error: the hash and ledger record stay
// the source of truth whether or not the bytes are previewable.
func (c *PinataClient) Fetch(ctx context.Context, contentID string) (domain.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.gatewayURL+gatewayPath+contentID, nil)
	if err != nil {
		return domain.FetchResult{}, apperrors.NewInternalError("failed to build gateway request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("content gateway unreachable, serving placeholder", "ipfs_cid", contentID, "reason", err)
		return placeholderResult(contentID), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("content gateway returned non-200 status, serving placeholder", "ipfs_cid", contentID, "status", resp.StatusCode)
		return placeholderResult(contentID), nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("content gateway read failed, serving placeholder", "ipfs_cid", contentID, "reason", err)
		return placeholderResult(contentID), nil
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return domain.FetchResult{Available: true, Data: data, ContentType: contentType}, nil
}

func placeholderResult(contentID string) domain.FetchResult {
	return domain.FetchResult{
		Available:   false,
		Data:        []byte("document content unavailable: " + contentID),
		ContentType: "text/plain; charset=utf-8",
	}
}
