package token

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domainToken "peerlend/internal/domain/token"
)

// Client talks to the external token service. A declined transfer surfaces
// as ErrTransferFailed so the calling settlement operation aborts atomically.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type transferRequest struct {
	Token     string `json:"token"`
	Owner     string `json:"owner"`
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

type transferResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

func (c *Client) TransferFrom(ctx context.Context, tokenRef, owner, recipient string, amount int64) error {
	payload, err := json.Marshal(transferRequest{
		Token:     tokenRef,
		Owner:     owner,
		Recipient: recipient,
		Amount:    amount,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transfers", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("token transfer call: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", domainToken.ErrTransferFailed, resp.StatusCode)
	}
	var out transferResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	if !out.Success {
		if out.Reason != "" {
			return fmt.Errorf("%w: %s", domainToken.ErrTransferFailed, out.Reason)
		}
		return domainToken.ErrTransferFailed
	}
	return nil
}
