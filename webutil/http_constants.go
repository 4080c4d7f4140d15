package webutil

const (
	// Header Keys
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderAllow         = "Allow"
	HeaderRequestID     = "X-Request-ID"
	HeaderCacheControl  = "Cache-Control"

	// Content Types
	ContentTypeJSON          = "application/json"
	ContentTypeJSONUTF8      = "application/json; charset=utf-8"
	ContentTypeTextPlainUTF8 = "text/plain; charset=utf-8"
	ContentTypeHTMLUTF8      = "text/html; charset=utf-8"
)
