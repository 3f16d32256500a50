package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the external proof-verifier service. Both calls are
// read-only from this service's point of view: the verifier owns all
// verification state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type statusResponse struct {
	IsVerified bool `json:"is_verified"`
}

type verifyRequest struct {
	VerifierRef  string `json:"verifier_ref"`
	Presentation string `json:"presentation"`
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// ProofStatus looks up whether subject completed a prior verification for
// requestID.
func (c *Client) ProofStatus(ctx context.Context, subject, requestID string) (bool, error) {
	u := fmt.Sprintf("%s/status?subject=%s&request_id=%s",
		c.baseURL, url.QueryEscape(subject), url.QueryEscape(requestID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("verifier status call: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("verifier status call: unexpected status %d", resp.StatusCode)
	}
	var out statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.IsVerified, nil
}

// Verify checks one presentation against a verifier reference.
func (c *Client) Verify(ctx context.Context, verifierRef, presentation string) (bool, error) {
	payload, err := json.Marshal(verifyRequest{VerifierRef: verifierRef, Presentation: presentation})
	if err != nil {
		return false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/verify", bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("verifier verify call: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("verifier verify call: unexpected status %d", resp.StatusCode)
	}
	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Valid, nil
}
