package handlers

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vismify/internal/api/services"
	"vismify/internal/domain"
)

func setupPageHandlerTest(t *testing.T) (*PageHandler, *echo.Echo) {
	t.Helper()
	theme := services.NewThemeService(nil, domain.ThemeSystem)
	handler := NewPageHandler(testSite(t), newTestCatalog(t), theme, "https://vismifytools.com", "en", nil)
	return handler, newTestEcho()
}

func TestPageHandler_Landing(t *testing.T) {
	handler, e := setupPageHandlerTest(t)

	render := func(t *testing.T, target, themeCookie string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if themeCookie != "" {
			req.AddCookie(&http.Cookie{Name: ThemeCookie, Value: themeCookie})
		}
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Landing(e.NewContext(req, rec)))
		return rec
	}

	t.Run("default page", func(t *testing.T) {
		rec := render(t, "/", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Body.String(), "Showing 8 tools")
		assert.Contains(t, rec.Body.String(), `data-theme="system"`)
	})

	t.Run("query parameters drive the tools section", func(t *testing.T) {
		rec := render(t, "/?category=finance&view=list", "")
		body := rec.Body.String()
		assert.Contains(t, body, "Showing 1 tool")
		assert.Contains(t, body, "Smart Zakat Calculator")
		assert.Contains(t, body, `data-tool-list="list"`)
	})

	t.Run("theme cookie and language", func(t *testing.T) {
		rec := render(t, "/?lang=ur", "dark")
		assert.Contains(t, rec.Body.String(), `<html lang="ur" dir="rtl" class="scroll-smooth dark" data-theme="dark">`)
	})

	t.Run("unknown language falls back to the first one", func(t *testing.T) {
		rec := render(t, "/?lang=xx", "")
		assert.Contains(t, rec.Body.String(), `<html lang="en" dir="ltr"`)
	})

	t.Run("newsletter status is shown", func(t *testing.T) {
		rec := render(t, "/?newsletter=subscribed", "")
		assert.Contains(t, rec.Body.String(), "Thanks for subscribing!")
	})
}

func TestPageHandler_Landing_CatalogUnavailable(t *testing.T) {
	theme := services.NewThemeService(nil, domain.ThemeSystem)
	handler := NewPageHandler(testSite(t), services.NewCatalogService(failingSource{}, nil), theme, "", "en", nil)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	err := handler.Landing(e.NewContext(req, rec))

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
}

func TestSEOHandler(t *testing.T) {
	handler := NewSEOHandler(testSite(t), "https://vismifytools.com")
	e := newTestEcho()

	serve := func(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
		t.Helper()
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		return rec
	}

	t.Run("robots", func(t *testing.T) {
		rec := serve(t, handler.Robots, "/robots.txt")
		assert.Contains(t, rec.Body.String(), "Sitemap: https://vismifytools.com/sitemap.xml")
		assert.Contains(t, rec.Body.String(), "Disallow: /api/")
	})

	t.Run("sitemap", func(t *testing.T) {
		rec := serve(t, handler.Sitemap, "/sitemap.xml")

		var set struct {
			URLs []struct {
				Loc string `xml:"loc"`
			} `xml:"url"`
		}
		require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
		require.Len(t, set.URLs, 5)
		assert.Equal(t, "https://vismifytools.com/", set.URLs[0].Loc)
		assert.Equal(t, "https://vismifytools.com/?category=prayer", set.URLs[1].Loc)
		assert.Contains(t, rec.Body.String(), `hreflang="ar"`)
	})

	t.Run("manifest", func(t *testing.T) {
		rec := serve(t, handler.Manifest, "/manifest.json")

		var m Manifest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
		assert.Equal(t, "VismifyTools", m.ShortName)
		assert.Equal(t, "#059669", m.ThemeColor)
		assert.Equal(t, "standalone", m.Display)
		assert.Len(t, m.Icons, 2)
	})
}
