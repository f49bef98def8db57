// Package authgw is a thin client for the managed auth service the
// dashboard signs in against. Only the two flows the relay forwards are
// implemented: password sign-in and magic-link (OTP) issuance.
package authgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the auth service's REST surface using the
// service-role key.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProviderError carries the auth service's own rejection message so the
// relay can surface it verbatim.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth provider rejected request (%d): %s", e.StatusCode, e.Message)
}

// SignInWithPassword exchanges email+password for a session payload.
// The payload is passed through untouched; the relay does not own its
// schema.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (json.RawMessage, error) {
	body := map[string]string{"email": email, "password": password}
	return c.post(ctx, "/auth/v1/token?grant_type=password", body)
}

// SendMagicLink asks the auth service to email a one-time sign-in link.
func (c *Client) SendMagicLink(ctx context.Context, email string) (json.RawMessage, error) {
	body := map[string]interface{}{"email": email, "create_user": true}
	return c.post(ctx, "/auth/v1/otp", body)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (json.RawMessage, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(data, resp.StatusCode),
		}
	}

	return json.RawMessage(data), nil
}

// providerMessage digs the human-readable message out of the provider's
// error body. The service uses two shapes depending on the endpoint.
func providerMessage(body []byte, status int) string {
	var e struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		ErrorCode        string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		switch {
		case e.Msg != "":
			return e.Msg
		case e.Message != "":
			return e.Message
		case e.ErrorDescription != "":
			return e.ErrorDescription
		case e.ErrorCode != "":
			return e.ErrorCode
		}
	}
	return http.StatusText(status)
}
