package contacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AmGarera/tagnpark-landing/models"
)

const (
	DefaultResendBaseURL    = "https://api.resend.com"
	DefaultResendAudienceID = "9ed0afde-f7ca-4307-860d-08756157cec0"

	maxErrorBodyBytes = 2048
)

// ResendProvider adds contacts to a Resend audience.
type ResendProvider struct {
	apiKey   string
	endpoint string
	hc       *http.Client
}

// NewResendProvider builds a provider for one audience. A zero timeout leaves
// the outbound call bounded only by the caller's context.
func NewResendProvider(apiKey, baseURL, audienceID string, timeout time.Duration) *ResendProvider {
	if baseURL == "" {
		baseURL = DefaultResendBaseURL
	}
	if audienceID == "" {
		audienceID = DefaultResendAudienceID
	}
	return &ResendProvider{
		apiKey:   apiKey,
		endpoint: strings.TrimRight(baseURL, "/") + "/audiences/" + audienceID + "/contacts",
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (p *ResendProvider) Name() string { return "resend" }

// Endpoint is the contacts URL requests are sent to.
func (p *ResendProvider) Endpoint() string { return p.endpoint }

func (p *ResendProvider) AddContact(ctx context.Context, contact models.Contact) error {
	body, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("failed to marshal Resend contact: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create Resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.hc.Do(req)
	if err != nil {
		return fmt.Errorf("Resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// UpstreamError reports a non-success reply from the provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Resend returned status %d: %s", e.StatusCode, e.Body)
}
