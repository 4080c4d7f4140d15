package routehandlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmGarera/tagnpark-landing/contacts"
	"github.com/AmGarera/tagnpark-landing/models"
	"github.com/AmGarera/tagnpark-landing/webutil"
)

type fakeProvider struct {
	err      error
	contacts []models.Contact
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) AddContact(_ context.Context, c models.Contact) error {
	f.contacts = append(f.contacts, c)
	return f.err
}

type fakePublisher struct {
	err    error
	emails []string
}

func (f *fakePublisher) PublishSignup(_ context.Context, email string) error {
	f.emails = append(f.emails, email)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

func serveSubscribe(h *SubscribeHandler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/subscribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	webutil.MakeHandler(h.HandleSubscribe).ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleSubscribe_UpstreamSuccess(t *testing.T) {
	var forwarded map[string]any
	var auth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		_, _ = w.Write([]byte(`{"object":"contact","id":"c-1"}`))
	}))
	defer upstream.Close()

	h := NewSubscribeHandler(contacts.NewResendProvider("re_secret", upstream.URL, "aud", 0), nil)
	rec := serveSubscribe(h, http.MethodPost, `{"email":"a@b.com","first_name":"","last_name":""}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"message": "Success"}, decodeBody(t, rec))
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.NotContains(t, rec.Body.String(), "re_secret")

	assert.Equal(t, "Bearer re_secret", auth)
	assert.Equal(t, map[string]any{
		"email":        "a@b.com",
		"first_name":   "",
		"last_name":    "",
		"unsubscribed": false,
	}, forwarded)
}

func TestHandleSubscribe_UpstreamRejects(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnprocessableEntity, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"name":"rejected","message":"secret detail"}`))
			}))
			defer upstream.Close()

			h := NewSubscribeHandler(contacts.NewResendProvider("k", upstream.URL, "aud", 0), nil)
			rec := serveSubscribe(h, http.MethodPost, `{"email":"a@b.com","first_name":"","last_name":""}`)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, MsgSubscribeFailed, body["error"])
			assert.NotContains(t, rec.Body.String(), "secret detail")
		})
	}
}

func TestHandleSubscribe_NetworkFailureCollapses(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	h := NewSubscribeHandler(contacts.NewResendProvider("k", url, "aud", 0), nil)
	rec := serveSubscribe(h, http.MethodPost, `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, MsgSubscribeFailed, decodeBody(t, rec)["error"])
}

func TestHandleSubscribe_AlwaysForwardsSubscribed(t *testing.T) {
	provider := &fakeProvider{}
	h := NewSubscribeHandler(provider, nil)

	rec := serveSubscribe(h, http.MethodPost, `{"email":"a@b.com","first_name":"Ann","last_name":"Lee","unsubscribed":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, provider.contacts, 1)
	assert.Equal(t, models.Contact{Email: "a@b.com", FirstName: "Ann", LastName: "Lee", Unsubscribed: false}, provider.contacts[0])
}

func TestHandleSubscribe_MethodNotAllowed(t *testing.T) {
	provider := &fakeProvider{}
	h := NewSubscribeHandler(provider, nil)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			rec := serveSubscribe(h, method, "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, "POST", rec.Header().Get("Allow"))
			assert.Equal(t, "Method "+method+" Not Allowed", rec.Body.String())
		})
	}
	assert.Empty(t, provider.contacts)
}

func TestHandleSubscribe_UndecodableBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated json", body: `{"email":`},
		{name: "empty body", body: ``},
		{name: "email of wrong type", body: `{"email":5}`},
		{name: "array instead of object", body: `["a@b.com"]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{}
			h := NewSubscribeHandler(provider, nil)

			rec := serveSubscribe(h, http.MethodPost, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid request payload", decodeBody(t, rec)["error"])
			assert.Empty(t, provider.contacts)
		})
	}
}

func TestHandleSubscribe_PublishesOnSuccessOnly(t *testing.T) {
	publisher := &fakePublisher{}

	ok := NewSubscribeHandler(&fakeProvider{}, publisher)
	require.Equal(t, http.StatusOK, serveSubscribe(ok, http.MethodPost, `{"email":"a@b.com"}`).Code)

	failing := NewSubscribeHandler(&fakeProvider{err: errors.New("nope")}, publisher)
	require.Equal(t, http.StatusInternalServerError, serveSubscribe(failing, http.MethodPost, `{"email":"c@d.com"}`).Code)

	assert.Equal(t, []string{"a@b.com"}, publisher.emails)
}

func TestHandleSubscribe_PublishFailureStillSucceeds(t *testing.T) {
	h := NewSubscribeHandler(&fakeProvider{}, &fakePublisher{err: errors.New("broker down")})

	rec := serveSubscribe(h, http.MethodPost, `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Success", decodeBody(t, rec)["message"])
}
