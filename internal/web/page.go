// Package web renders the landing page with gomponents.
package web

import (
	"io"
	"net/url"
	"strconv"

	"vismify/internal/api/services"
	"vismify/internal/domain"
)

type View string

const (
	ViewGrid View = "grid"
	ViewList View = "list"
)

func ParseView(s string) View {
	if View(s) == ViewList {
		return ViewList
	}
	return ViewGrid
}

// Page is everything one render of the landing page needs.
type Page struct {
	Site       *domain.SiteContent
	BaseURL    string
	Theme      domain.Theme
	Language   domain.Language
	Catalog    *services.CatalogResult
	View       View
	Newsletter string
}

func Render(w io.Writer, p Page) error {
	return document(p).Render(w)
}

// catalogURL links back to the landing page with q applied, dropping
// parameters that hold their default value.
func catalogURL(q domain.CatalogQuery, view View, lang string) string {
	v := url.Values{}
	if q.Category != "" && q.Category != domain.CategoryAll {
		v.Set("category", string(q.Category))
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Sort != "" && q.Sort != domain.SortPopular {
		v.Set("sort", string(q.Sort))
	}
	if q.MinRating > 0 {
		v.Set("min_rating", strconv.FormatFloat(q.MinRating, 'f', -1, 64))
	}
	if q.Tier != "" && q.Tier != domain.TierAll {
		v.Set("tier", string(q.Tier))
	}
	if view == ViewList {
		v.Set("view", string(view))
	}
	if lang != "" && lang != "en" {
		v.Set("lang", lang)
	}

	if len(v) == 0 {
		return "/#tools"
	}
	return "/?" + v.Encode() + "#tools"
}
