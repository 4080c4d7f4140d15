package contacts

import (
	"context"

	"github.com/AmGarera/tagnpark-landing/models"
)

// ContactProvider is the adapter interface for mailing-list backends.
type ContactProvider interface {
	// Name identifies the provider in logs and metrics (e.g. "resend").
	Name() string
	// AddContact creates or updates contact in the provider's audience.
	// Any non-success outcome, including transport failures, is an error.
	AddContact(ctx context.Context, contact models.Contact) error
}
