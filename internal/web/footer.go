package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"vismify/internal/domain"
)

var newsletterMessages = map[string]string{
	"subscribed": "Thanks for subscribing! Check your inbox soon.",
	"invalid":    "Please enter a valid email address.",
	"exists":     "This email is already subscribed.",
	"error":      "Something went wrong. Please try again later.",
}

func footerSection(p Page) g.Node {
	footer := p.Site.Footer

	return Footer(
		ID("support"),
		Class("bg-gray-950 py-16 text-gray-300"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("grid gap-10 lg:grid-cols-6"),
				Div(
					Class("lg:col-span-2"),
					A(Href("#home"), Class("text-2xl font-bold text-white"), g.Text(p.Site.Name)),
					P(Class("mt-4 text-sm"), g.Text(footer.Tagline)),
					newsletterForm(p),
				),
				g.Map(footer.LinkGroups, linkGroup),
			),
			Div(
				Class("mt-12 flex flex-wrap gap-4 border-t border-white/10 pt-8"),
				g.Map(footer.Awards, func(a domain.Award) g.Node {
					return Div(
						Class("rounded-xl bg-white/5 px-4 py-2 text-sm"),
						Strong(Class("block text-white"), g.Text(a.Name)),
						Span(Class("text-xs text-gray-400"), g.Text(a.Org)),
					)
				}),
			),
			Div(
				Class("mt-8 flex flex-col items-center justify-between gap-4 md:flex-row"),
				P(Class("text-sm"), g.Text(footer.Copyright)),
				Ul(
					Class("flex gap-4"),
					g.Map(footer.Social, func(link domain.Link) g.Node {
						return Li(A(
							Href(link.Href),
							g.Attr("aria-label", link.Name),
							Class("hover:text-white"),
							Span(Class("icon icon-"+link.Icon), g.Attr("aria-hidden", "true")),
						))
					}),
				),
			),
		),
	)
}

func linkGroup(group domain.LinkGroup) g.Node {
	return Div(
		H4(Class("font-semibold text-white"), g.Text(group.Title)),
		Ul(
			Class("mt-4 space-y-2 text-sm"),
			g.Map(group.Links, func(link domain.Link) g.Node {
				return Li(A(Href(link.Href), Class("hover:text-white"), g.Text(link.Name)))
			}),
		),
	)
}

func newsletterForm(p Page) g.Node {
	message, hasStatus := newsletterMessages[p.Newsletter]
	statusClass := "mt-2 text-sm text-emerald-400"
	if p.Newsletter != "subscribed" {
		statusClass = "mt-2 text-sm text-red-400"
	}

	return Div(
		ID("newsletter"),
		Class("mt-6"),
		H4(Class("font-semibold text-white"), g.Text("Stay Updated")),
		g.El("form",
			Method("post"),
			Action("/newsletter"),
			Class("mt-3 flex gap-2"),
			Input(Type("hidden"), Name("language"), Value(p.Language.Code)),
			Input(
				Type("email"),
				Name("email"),
				Required(),
				Placeholder("Enter your email"),
				g.Attr("aria-label", "Email address"),
				Class("flex-1 rounded-lg bg-white/10 px-3 py-2 text-white placeholder:text-gray-500"),
			),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Subscribe")),
		),
		g.If(hasStatus, P(Class(statusClass), Role("status"), g.Text(message))),
	)
}
