package webutil

import (
	"errors"
	"log/slog"
	"net/http"
)

// AppHandler represents a handler function that returns an error.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler adapts an AppHandler to the standard http.HandlerFunc signature.
// A returned *HTTPError is answered with its code and public message. Any other
// error becomes a 500 whose public message never includes the cause.
func MakeHandler(handler AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			return
		}

		var httpErr *HTTPError
		var publicMessage string
		var statusCode int

		if errors.As(err, &httpErr) {
			statusCode = httpErr.Code
			publicMessage = httpErr.Message
			logLevel := slog.LevelWarn // client errors are warnings server-side
			if statusCode >= 500 {
				logLevel = slog.LevelError
			}
			attrs := []any{
				"code", httpErr.Code,
				"msg", httpErr.Message,
				"path", r.URL.Path,
				"method", r.Method,
			}
			if cause := errors.Unwrap(httpErr); cause != nil && cause.Error() != publicMessage {
				attrs = append(attrs, "cause", cause)
			}
			slog.Log(r.Context(), logLevel, "Error response", attrs...)
		} else {
			statusCode = http.StatusInternalServerError
			publicMessage = msgInternalServer
			slog.Error("Unhandled internal error", "path", r.URL.Path, "method", r.Method, "error", err)
		}

		RespondWithError(w, r, statusCode, publicMessage)
	}
}
