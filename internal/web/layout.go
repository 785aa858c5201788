package web

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"vismify/internal/domain"
)

func document(p Page) g.Node {
	htmlClass := "scroll-smooth"
	if p.Theme == domain.ThemeDark {
		htmlClass += " dark"
	}
	dir := "ltr"
	if p.Language.RTL {
		dir = "rtl"
	}

	return Doctype(
		HTML(
			Lang(p.Language.Code),
			g.Attr("dir", dir),
			Class(htmlClass),
			g.Attr("data-theme", string(p.Theme)),
			head(p),
			Body(
				Class("bg-white text-gray-900 antialiased dark:bg-gray-950 dark:text-gray-100"),
				navbar(p),
				Main(
					heroSection(p.Site),
					toolsSection(p),
					aboutSection(p.Site),
				),
				footerSection(p),
				Script(Src("/assets/js/app.js"), Defer()),
			),
		),
	)
}

func head(p Page) g.Node {
	seo := p.Site.SEO
	canonical := p.BaseURL + "/"
	ogImage := absoluteURL(p.BaseURL, seo.OGImage)

	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(g.Text(seo.Title)),
		Meta(Name("description"), Content(seo.Description)),
		Meta(Name("keywords"), Content(strings.Join(seo.Keywords, ", "))),
		Meta(Name("author"), Content(p.Site.Name)),
		Meta(Name("robots"), Content("index, follow")),
		Meta(Name("theme-color"), Content(seo.ThemeColor)),
		Link(Rel("canonical"), Href(canonical)),
		g.Group(g.Map(p.Site.Languages, func(lang domain.Language) g.Node {
			return Link(Rel("alternate"), g.Attr("hreflang", lang.Code), Href(canonical+"?lang="+lang.Code))
		})),
		Link(Rel("alternate"), g.Attr("hreflang", "x-default"), Href(canonical)),

		Meta(g.Attr("property", "og:type"), Content("website")),
		Meta(g.Attr("property", "og:site_name"), Content(p.Site.Name)),
		Meta(g.Attr("property", "og:title"), Content(seo.OGTitle)),
		Meta(g.Attr("property", "og:description"), Content(seo.Description)),
		Meta(g.Attr("property", "og:url"), Content(canonical)),
		Meta(g.Attr("property", "og:image"), Content(ogImage)),
		Meta(g.Attr("property", "og:locale"), Content(p.Language.Code)),

		Meta(Name("twitter:card"), Content("summary_large_image")),
		Meta(Name("twitter:site"), Content(seo.TwitterSite)),
		Meta(Name("twitter:title"), Content(seo.OGTitle)),
		Meta(Name("twitter:description"), Content(seo.Description)),
		Meta(Name("twitter:image"), Content(ogImage)),

		Link(Rel("manifest"), Href("/manifest.json")),
		Link(Rel("icon"), Href("/assets/favicon.ico")),
		Link(Rel("apple-touch-icon"), Href("/assets/apple-touch-icon.png")),
		Link(Rel("stylesheet"), Href("/assets/css/app.css")),

		jsonLD(organizationLD(p)),
		jsonLD(webApplicationLD(p)),
		jsonLD(breadcrumbLD(p)),
	)
}

func absoluteURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// jsonLD marshals v into a structured-data script. encoding/json escapes
// '<' and '>', so the payload cannot close the script element.
func jsonLD(v any) g.Node {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return Script(Type("application/ld+json"), g.Raw(string(b)))
}

func organizationLD(p Page) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     p.Site.Name,
		"url":      p.BaseURL,
		"logo":     p.BaseURL + "/assets/logo.png",
		"sameAs":   p.Site.SEO.SameAs,
		"contactPoint": map[string]any{
			"@type":             "ContactPoint",
			"contactType":       "customer support",
			"email":             p.Site.SEO.Email,
			"availableLanguage": languageNames(p.Site.Languages),
		},
	}
}

func webApplicationLD(p Page) map[string]any {
	return map[string]any{
		"@context":            "https://schema.org",
		"@type":               "WebApplication",
		"name":                p.Site.Name,
		"url":                 p.BaseURL,
		"description":         p.Site.SEO.Description,
		"applicationCategory": "LifestyleApplication",
		"operatingSystem":     "Web, iOS, Android",
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "USD",
		},
		"aggregateRating": map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": p.Site.SEO.RatingValue,
			"reviewCount": p.Site.SEO.ReviewCount,
		},
	}
}

func breadcrumbLD(p Page) map[string]any {
	items := make([]map[string]any, 0, len(p.Site.Nav))
	for i, link := range p.Site.Nav {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     link.Name,
			"item":     p.BaseURL + "/" + link.Href,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

func languageNames(langs []domain.Language) []string {
	out := make([]string, 0, len(langs))
	for _, lang := range langs {
		out = append(out, lang.Name)
	}
	return out
}
