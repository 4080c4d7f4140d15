package webutil

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondWithError(w http.ResponseWriter, r *http.Request, code int, message string) {
	RespondWithJSON(w, r, code, ErrorResponse{Error: message})
}

func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

// DecodeJSON reads a JSON request body into v.
func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return render.DecodeJSON(r.Body, v)
}
