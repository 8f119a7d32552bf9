package httplocale

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/localekit/localekit/pkg/cldr"
	"github.com/localekit/localekit/pkg/localeid"
	"github.com/localekit/localekit/pkg/logger"
)

type localeKey struct{}

// LocaleConfig configures the locale resolution middleware.
type LocaleConfig struct {
	// QueryParam naming an explicit locale override. Defaults to "locale".
	QueryParam string
	// CookieName carrying a previously chosen locale. Defaults to "locale".
	CookieName string
	// Default locale applied when no request source yields a known locale.
	// Defaults to "en"; set it to "" to leave such requests unannotated.
	Default string
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithQueryParam sets the query parameter checked for a locale override.
func WithQueryParam(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.QueryParam = name
	}
}

// WithCookieName sets the cookie checked for a locale preference.
func WithCookieName(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.CookieName = name
	}
}

// WithDefaultLocale sets the fallback locale; empty disables the fallback.
func WithDefaultLocale(locale string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Default = locale
	}
}

// Locale returns middleware that resolves the request locale against the
// backend's known set (query parameter, then cookie, then Accept-Language)
// and stores the annotated identifier in the request context.
func Locale(backend *cldr.Backend, opts ...LocaleOption) Middleware {
	if backend == nil {
		panic("httplocale: backend is not provided")
	}

	cfg := &LocaleConfig{
		QueryParam: "locale",
		CookieName: "locale",
		Default:    "en",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := resolveRequestLocale(backend, cfg, r); ok {
				ctx := context.WithValue(r.Context(), localeKey{}, id)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolveRequestLocale tries each request source in priority order and
// accepts the first candidate that maps to a known locale.
func resolveRequestLocale(backend *cldr.Backend, cfg *LocaleConfig, r *http.Request) (localeid.Identifier, bool) {
	var candidates []string

	if cfg.QueryParam != "" {
		if v := r.URL.Query().Get(cfg.QueryParam); v != "" {
			candidates = append(candidates, v)
		}
	}
	if cfg.CookieName != "" {
		if cookie, err := r.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
			candidates = append(candidates, cookie.Value)
		}
	}
	if name := Negotiate(r.Header.Get("Accept-Language"), backend.KnownNames()); name != "" {
		candidates = append(candidates, name)
	}
	if cfg.Default != "" {
		candidates = append(candidates, cfg.Default)
	}

	for _, candidate := range candidates {
		id, err := backend.ParseLocale(candidate)
		if err != nil || id.CanonicalName == "" {
			continue
		}
		return id, true
	}

	return localeid.Identifier{}, false
}

// FromContext extracts the resolved locale identifier from the context.
// ok is false if the Locale middleware did not annotate the request.
func FromContext(ctx context.Context) (localeid.Identifier, bool) {
	id, ok := ctx.Value(localeKey{}).(localeid.Identifier)
	return id, ok
}

// LocaleExtractor returns a ContextExtractor for use with logger.New.
// Adds the resolved canonical locale name to all log entries.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := FromContext(ctx); ok {
			return slog.String("locale", id.CanonicalName), true
		}
		return slog.Attr{}, false
	}
}
