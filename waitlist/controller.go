// Package waitlist holds the state and submit logic of the "Get Early Access"
// form. It talks to the subscribe endpoint over HTTP exactly as a browser
// would, so the provider credential stays with the endpoint.
package waitlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/AmGarera/tagnpark-landing/models"
	"github.com/AmGarera/tagnpark-landing/webutil"
)

// GenericError is shown when the endpoint gives no usable message.
const GenericError = "Failed to submit email"

const maxReplyBytes = 4096

// State is what the form renders from.
type State struct {
	Email     string
	Submitted bool
	Error     string
}

// Controller submits the form to the subscribe endpoint.
type Controller struct {
	endpoint string
	hc       *http.Client
}

func NewController(endpoint string, hc *http.Client) *Controller {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Controller{endpoint: endpoint, hc: hc}
}

// Submit makes one attempt to add email to the waitlist and updates state.
// On success the form switches to its submitted view and the field is
// cleared. On any failure the form stays editable with Error set.
func (c *Controller) Submit(ctx context.Context, state *State, email string) {
	state.Email = email

	if err := c.post(ctx, models.SignupRequest{Email: email}); err != nil {
		slog.WarnContext(ctx, "Waitlist submission failed",
			"email_hash", webutil.EmailFingerprint(email), "error", err)
		state.Error = publicMessage(err)
		return
	}

	state.Submitted = true
	state.Email = ""
	state.Error = ""
}

func (c *Controller) post(ctx context.Context, signup models.SignupRequest) error {
	body, err := json.Marshal(signup)
	if err != nil {
		return fmt.Errorf("marshal signup: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build subscribe request: %w", err)
	}
	req.Header.Set(webutil.HeaderContentType, webutil.ContentTypeJSON)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("subscribe request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	rejected := &RejectedError{StatusCode: resp.StatusCode}
	var reply webutil.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(&reply); err == nil {
		rejected.Message = reply.Error
	}
	return rejected
}

// RejectedError is a non-2xx reply from the subscribe endpoint.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("subscribe endpoint returned %d: %q", e.StatusCode, e.Message)
}

func publicMessage(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	return GenericError
}
