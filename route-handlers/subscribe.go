package routehandlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/AmGarera/tagnpark-landing/contacts"
	"github.com/AmGarera/tagnpark-landing/events"
	"github.com/AmGarera/tagnpark-landing/metrics"
	"github.com/AmGarera/tagnpark-landing/models"
	"github.com/AmGarera/tagnpark-landing/webutil"
)

const (
	MsgSubscribeSuccess = "Success"
	MsgSubscribeFailed  = "Failed to submit email"
	msgInvalidPayload   = "Invalid request payload"
)

// SubscribeHandler forwards waitlist signups to the contacts provider.
// The provider holds the API credential; nothing from it reaches the caller.
type SubscribeHandler struct {
	Provider  contacts.ContactProvider
	Publisher events.Publisher
}

func NewSubscribeHandler(provider contacts.ContactProvider, publisher events.Publisher) *SubscribeHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &SubscribeHandler{Provider: provider, Publisher: publisher}
}

// HandleSubscribe serves every method on the route so that anything other
// than POST gets a 405 advertising POST.
func (h *SubscribeHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodPost {
		w.Header().Set(webutil.HeaderAllow, http.MethodPost)
		w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeTextPlainUTF8)
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = fmt.Fprintf(w, "Method %s Not Allowed", r.Method)
		return nil
	}

	var req models.SignupRequest
	if err := webutil.DecodeJSON(r, &req); err != nil {
		return webutil.ErrBadRequestWrap(msgInvalidPayload, err)
	}

	fingerprint := webutil.EmailFingerprint(req.Email)
	provider := h.Provider.Name()

	if err := h.Provider.AddContact(r.Context(), req.Contact()); err != nil {
		metrics.SubscriptionsTotal.WithLabelValues(provider, metrics.ResultFailure).Inc()
		return webutil.ErrInternalServerWrap(MsgSubscribeFailed,
			fmt.Errorf("add contact %s via %s: %w", fingerprint, provider, err))
	}
	metrics.SubscriptionsTotal.WithLabelValues(provider, metrics.ResultSuccess).Inc()
	slog.InfoContext(r.Context(), "Waitlist signup forwarded", "provider", provider, "email_hash", fingerprint)

	// Best effort: the contact already exists upstream.
	if err := h.Publisher.PublishSignup(r.Context(), req.Email); err != nil {
		slog.WarnContext(r.Context(), "Signup event not published", "email_hash", fingerprint, "error", err)
	}

	webutil.RespondWithJSON(w, r, http.StatusOK, models.SubscribeResponse{Message: MsgSubscribeSuccess})
	return nil
}
