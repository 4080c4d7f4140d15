package routehandlers

import (
	"net/http"

	"github.com/AmGarera/tagnpark-landing/landing"
	"github.com/AmGarera/tagnpark-landing/waitlist"
	"github.com/AmGarera/tagnpark-landing/webutil"
)

const formFieldEmail = "email"

// LandingHandler serves the marketing page and its waitlist form.
// Form state lives only for the duration of one request.
type LandingHandler struct {
	Page *landing.Page
	Form *waitlist.Controller
}

func NewLandingHandler(page *landing.Page, form *waitlist.Controller) *LandingHandler {
	return &LandingHandler{Page: page, Form: form}
}

func (h *LandingHandler) HandleIndex(w http.ResponseWriter, r *http.Request) error {
	return h.render(w, waitlist.State{})
}

// HandleWaitlistForm runs one submit attempt for the posted email and
// re-renders the page in the resulting state.
func (h *LandingHandler) HandleWaitlistForm(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return webutil.ErrBadRequestWrap("Invalid form submission", err)
	}

	var state waitlist.State
	h.Form.Submit(r.Context(), &state, r.PostForm.Get(formFieldEmail))
	return h.render(w, state)
}

func (h *LandingHandler) render(w http.ResponseWriter, state waitlist.State) error {
	w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeHTMLUTF8)
	return h.Page.Render(w, state)
}
