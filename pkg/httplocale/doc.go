// Package httplocale resolves the locale of incoming HTTP requests against a
// cldr.Backend and carries the result through the request context.
//
// The middleware checks, in order: an explicit query parameter, a cookie,
// and the Accept-Language header negotiated against the backend's known
// locale set. The first source that yields a known locale wins; otherwise a
// configurable default applies. Handlers read the outcome with FromContext
// and resolve attributes through the backend:
//
//	r := chi.NewRouter()
//	r.Use(httplocale.RequestID())
//	r.Use(httplocale.Locale(backend))
//
//	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
//		id, ok := httplocale.FromContext(req.Context())
//		// id.CanonicalName is a member of backend.KnownNames()
//	})
//
// The package also provides a request-ID middleware (preserving upstream
// tracing IDs, generating UUIDs otherwise) and logger context extractors so
// request ID and resolved locale appear on every log record.
package httplocale
