package httplocale_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localekit/localekit/pkg/cldr"
	"github.com/localekit/localekit/pkg/httplocale"
	"github.com/localekit/localekit/pkg/localeid"
)

func resolveLocale(t *testing.T, req *http.Request, opts ...httplocale.LocaleOption) (localeid.Identifier, bool) {
	t.Helper()

	backend, err := cldr.New()
	require.NoError(t, err)

	var (
		id localeid.Identifier
		ok bool
	)
	handler := httplocale.Locale(backend, opts...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok = httplocale.FromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return id, ok
}

func TestLocale(t *testing.T) {
	t.Parallel()

	t.Run("query parameter wins", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?locale=de-AT", nil)
		req.Header.Set("Accept-Language", "fr")

		id, ok := resolveLocale(t, req)
		require.True(t, ok)
		assert.Equal(t, "de-AT", id.CanonicalName)
	})

	t.Run("cookie beats accept-language", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "locale", Value: "pt-BR"})
		req.Header.Set("Accept-Language", "fr")

		id, ok := resolveLocale(t, req)
		require.True(t, ok)
		assert.Equal(t, "pt-BR", id.CanonicalName)
	})

	t.Run("negotiates accept-language against known locales", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-GB,en;q=0.9")

		id, ok := resolveLocale(t, req)
		require.True(t, ok)
		assert.Equal(t, "en-GB", id.CanonicalName)
	})

	t.Run("unknown candidates fall through to the next source", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?locale=xx-unknown", nil)
		req.Header.Set("Accept-Language", "ja")

		id, ok := resolveLocale(t, req)
		require.True(t, ok)
		assert.Equal(t, "ja", id.CanonicalName)
	})

	t.Run("regional variants reduce to known locales", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?locale=en-AU", nil)

		id, ok := resolveLocale(t, req)
		require.True(t, ok)
		assert.Equal(t, "en", id.CanonicalName)
		assert.Equal(t, "AU", id.Region)
	})

	t.Run("applies the default locale", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		id, ok := resolveLocale(t, req)
		require.True(t, ok)
		assert.Equal(t, "en", id.CanonicalName)
	})

	t.Run("empty default leaves the request unannotated", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, ok := resolveLocale(t, req, httplocale.WithDefaultLocale(""))
		require.False(t, ok)
	})

	t.Run("custom sources", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr-CA", nil)

		id, ok := resolveLocale(t, req, httplocale.WithQueryParam("lang"))
		require.True(t, ok)
		assert.Equal(t, "fr", id.CanonicalName)
	})

	t.Run("panics without a backend", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() {
			httplocale.Locale(nil)
		})
	})
}
