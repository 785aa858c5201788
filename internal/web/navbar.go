package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"vismify/internal/domain"
)

func navbar(p Page) g.Node {
	return Header(
		Class("fixed inset-x-0 top-0 z-50 border-b border-white/10 bg-white/80 backdrop-blur dark:bg-gray-950/80"),
		Nav(
			Class("container mx-auto flex items-center justify-between px-4 py-3"),
			g.Attr("aria-label", "Main"),
			A(
				Href("#home"),
				Class("flex items-center gap-2 text-xl font-bold"),
				Span(Class("icon icon-moon"), g.Attr("aria-hidden", "true")),
				g.Text(p.Site.Name),
			),
			Ul(
				Class("hidden items-center gap-6 md:flex"),
				g.Map(p.Site.Nav, func(link domain.Link) g.Node {
					return Li(A(
						Href(link.Href),
						Class("flex items-center gap-1 text-sm font-medium hover:text-emerald-600"),
						g.If(link.Icon != "", Span(g.Attr("aria-hidden", "true"), g.Text(link.Icon))),
						g.Text(link.Name),
					))
				}),
			),
			Div(
				Class("flex items-center gap-3"),
				languageMenu(p),
				themeToggle(p.Theme),
			),
		),
	)
}

func languageMenu(p Page) g.Node {
	return Div(
		Class("relative"),
		Button(
			Type("button"),
			Class("flex items-center gap-1 rounded-lg px-2 py-1 text-sm"),
			g.Attr("aria-haspopup", "true"),
			g.Text(p.Language.Flag+" "+p.Language.Name),
		),
		Ul(
			Class("absolute end-0 mt-2 w-40 rounded-lg bg-white shadow-lg dark:bg-gray-900"),
			Role("menu"),
			g.Map(p.Site.Languages, func(lang domain.Language) g.Node {
				itemClass := "block px-3 py-2 text-sm hover:bg-gray-100 dark:hover:bg-gray-800"
				if lang.Code == p.Language.Code {
					itemClass += " font-semibold text-emerald-600"
				}
				return Li(A(
					Href("/?lang="+lang.Code),
					Class(itemClass),
					Role("menuitem"),
					g.Attr("hreflang", lang.Code),
					g.Text(lang.Flag+" "+lang.Name),
				))
			}),
		),
	)
}

// themeToggle posts to /theme so the toggle works without scripts. The
// script upgrades it to /api/theme and applies theme_update pushes.
func themeToggle(theme domain.Theme) g.Node {
	label := "Switch to dark mode"
	icon := "moon"
	if theme == domain.ThemeDark {
		label = "Switch to light mode"
		icon = "sun"
	}

	return g.El("form",
		Method("post"),
		Action("/theme"),
		g.Attr("data-theme-toggle", ""),
		Button(
			Type("submit"),
			Class("rounded-full p-2 hover:bg-gray-100 dark:hover:bg-gray-800"),
			g.Attr("aria-label", label),
			Span(Class("icon icon-"+icon), g.Attr("aria-hidden", "true")),
		),
	)
}
