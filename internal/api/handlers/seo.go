package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"vismify/internal/domain"
)

// SEOHandler serves the crawler and install metadata files.
type SEOHandler struct {
	site    *domain.SiteContent
	baseURL string
}

func NewSEOHandler(site *domain.SiteContent, baseURL string) *SEOHandler {
	return &SEOHandler{site: site, baseURL: baseURL}
}

func (h *SEOHandler) Robots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Sitemap: " + h.baseURL + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	ChangeFreq string        `xml:"changefreq,omitempty"`
	Priority   string        `xml:"priority,omitempty"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *SEOHandler) Sitemap(c echo.Context) error {
	home := h.baseURL + "/"

	alternates := make([]sitemapLink, 0, len(h.site.Languages))
	for _, lang := range h.site.Languages {
		alternates = append(alternates, sitemapLink{
			Rel:      "alternate",
			HrefLang: lang.Code,
			Href:     home + "?lang=" + lang.Code,
		})
	}

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
		URLs: []sitemapURL{
			{Loc: home, ChangeFreq: "daily", Priority: "1.0", Alternates: alternates},
		},
	}
	for _, info := range domain.Categories {
		if info.ID == domain.CategoryAll {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        home + "?category=" + string(info.ID),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	return c.XML(http.StatusOK, set)
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []manifestIcon `json:"icons"`
}

func (h *SEOHandler) Manifest(c echo.Context) error {
	return c.JSON(http.StatusOK, Manifest{
		Name:            h.site.SEO.OGTitle,
		ShortName:       h.site.Name,
		Description:     h.site.SEO.Description,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      h.site.SEO.ThemeColor,
		Icons: []manifestIcon{
			{Src: "/assets/icon-192.png", Sizes: "192x192", Type: "image/png"},
			{Src: "/assets/icon-512.png", Sizes: "512x512", Type: "image/png"},
		},
	})
}
