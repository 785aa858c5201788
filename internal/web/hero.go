package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"vismify/internal/domain"
)

func heroSection(site *domain.SiteContent) g.Node {
	hero := site.Hero

	return Section(
		ID("home"),
		Class("relative overflow-hidden bg-gradient-to-br from-emerald-50 via-white to-teal-50 pt-32 pb-20 dark:from-gray-950 dark:via-gray-900 dark:to-emerald-950"),
		Div(
			Class("pointer-events-none absolute inset-0"),
			g.Attr("aria-hidden", "true"),
			g.Map(hero.Floating, func(glyph string) g.Node {
				return Span(Class("floating absolute text-4xl opacity-20"), g.Text(glyph))
			}),
		),
		Div(
			Class("container relative mx-auto px-4 text-center"),
			Span(
				Class("inline-flex items-center gap-2 rounded-full bg-emerald-100 px-4 py-1 text-sm font-medium text-emerald-700 dark:bg-emerald-900/40 dark:text-emerald-300"),
				Span(Class("icon icon-sparkles"), g.Attr("aria-hidden", "true")),
				g.Text(hero.Badge),
			),
			H1(
				Class("mt-6 text-4xl font-extrabold tracking-tight md:text-6xl"),
				g.Text(hero.Headline),
			),
			P(
				Class("mx-auto mt-6 max-w-2xl text-lg text-gray-600 dark:text-gray-300"),
				g.Text(hero.Tagline),
			),
			Div(
				Class("mt-8 flex justify-center gap-3"),
				A(Href("#tools"), Class("btn btn-primary"), g.Text("Explore Tools")),
				A(Href("#about"), Class("btn btn-ghost"), g.Text("Learn More")),
			),
			Dl(
				Class("mx-auto mt-16 grid max-w-4xl grid-cols-2 gap-6 md:grid-cols-4"),
				g.Map(hero.Stats, statCard),
			),
		),
	)
}

func statCard(stat domain.Stat) g.Node {
	return Div(
		Class("rounded-2xl bg-white/70 p-6 shadow-sm dark:bg-white/5"),
		g.If(stat.Icon != "", Span(Class("icon icon-"+stat.Icon+" mx-auto mb-2 block"), g.Attr("aria-hidden", "true"))),
		Dt(Class("text-sm text-gray-500 dark:text-gray-400"), g.Text(stat.Label)),
		Dd(Class("text-3xl font-bold text-emerald-600"), g.Text(stat.Number)),
		g.If(stat.Description != "", P(Class("mt-1 text-xs text-gray-500"), g.Text(stat.Description))),
	)
}
