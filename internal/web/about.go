package web

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"vismify/internal/domain"
)

func aboutSection(site *domain.SiteContent) g.Node {
	about := site.About

	return Section(
		ID("about"),
		Class("py-24"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("mx-auto max-w-3xl text-center"),
				H2(Class("text-3xl font-bold md:text-5xl"), g.Text(about.Headline)),
				P(Class("mt-6 text-lg text-gray-600 dark:text-gray-300"), g.Text(about.Intro)),
			),
			Div(
				Class("mt-16 grid gap-6 md:grid-cols-2 lg:grid-cols-4"),
				g.Map(about.Features, featureCard),
			),
			Dl(
				Class("mt-16 grid grid-cols-2 gap-6 md:grid-cols-3 lg:grid-cols-6"),
				g.Map(about.Stats, statCard),
			),
			Div(
				ID("community"),
				Class("mt-24"),
				H3(Class("text-center text-2xl font-bold"), g.Text("What Our Community Says")),
				Div(
					Class("mt-10 grid gap-6 md:grid-cols-3"),
					g.Map(about.Testimonials, testimonialCard),
				),
			),
		),
	)
}

func featureCard(f domain.Feature) g.Node {
	return Article(
		Class("rounded-2xl border border-gray-100 p-6 shadow-sm dark:border-white/10"),
		Div(
			Class("mb-4 inline-flex rounded-xl bg-gradient-to-r p-3 text-white "+f.Color),
			Span(Class("icon icon-"+f.Icon), g.Attr("aria-hidden", "true")),
		),
		H3(Class("text-lg font-semibold"), g.Text(f.Title)),
		P(Class("mt-2 text-sm text-gray-600 dark:text-gray-300"), g.Text(f.Description)),
		Span(Class("mt-4 inline-block text-sm font-semibold text-emerald-600"), g.Text(f.Stats)),
	)
}

func testimonialCard(t domain.Testimonial) g.Node {
	return Figure(
		Class("rounded-2xl bg-gray-50 p-6 dark:bg-white/5"),
		Div(
			Class("text-amber-400"),
			g.Attr("aria-label", "Rated "+strconv.Itoa(clampStars(t.Rating))+" out of 5"),
			g.Text(strings.Repeat("★", clampStars(t.Rating))),
		),
		BlockQuote(Class("mt-4 text-gray-700 dark:text-gray-200"), P(g.Text(t.Text))),
		FigCaption(
			Class("mt-6 flex items-center gap-3"),
			Span(Class("text-3xl"), g.Attr("aria-hidden", "true"), g.Text(t.Avatar)),
			Div(
				Strong(g.Text(t.Name)),
				P(Class("text-sm text-gray-500"), g.Text(t.Location)),
			),
		),
	)
}

func clampStars(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 5:
		return 5
	default:
		return n
	}
}
