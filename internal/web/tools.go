package web

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"vismify/internal/api/services"
	"vismify/internal/domain"
)

type option struct {
	value string
	label string
}

var tierOptions = []option{
	{string(domain.TierAll), "All Tools"},
	{string(domain.TierPremium), "Premium Only"},
	{string(domain.TierFree), "Free Only"},
}

var ratingOptions = []option{
	{"", "Any Rating"},
	{"4.5", "4.5+ Stars"},
	{"4", "4.0+ Stars"},
}

func toolsSection(p Page) g.Node {
	result := p.Catalog
	if result == nil {
		result = &services.CatalogResult{Query: domain.DefaultCatalogQuery()}
	}
	q := result.Query

	return Section(
		ID("tools"),
		Class("bg-gray-50 py-24 dark:bg-gray-900"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("mx-auto max-w-3xl text-center"),
				H2(Class("text-3xl font-bold md:text-5xl"), g.Text("Premium Islamic Tools")),
				P(Class("mt-4 text-lg text-gray-600 dark:text-gray-300"),
					g.Text("Discover our comprehensive suite of AI-powered Islamic tools designed for the modern Muslim lifestyle.")),
			),
			searchForm(q, p.View, p.Language.Code),
			categoryPills(result.Categories, q, p.View, p.Language.Code),
			Div(
				Class("mt-8 flex items-center justify-between text-sm text-gray-500"),
				P(g.Attr("aria-live", "polite"), g.Attr("data-result-count", ""), g.Text(resultSummary(result.Total))),
				viewSwitch(q, p.View, p.Language.Code),
			),
			Div(
				g.Attr("data-tool-results", string(p.View)),
				g.If(len(result.Tools) == 0, emptyState(p.Language.Code)),
				g.If(len(result.Tools) > 0, toolList(result.Tools, p.View)),
			),
		),
	)
}

func resultSummary(n int) string {
	if n == 1 {
		return "Showing 1 tool"
	}
	return "Showing " + strconv.Itoa(n) + " tools"
}

// searchForm submits with GET so every filter state has a shareable URL.
func searchForm(q domain.CatalogQuery, view View, lang string) g.Node {
	minRating := ""
	if q.MinRating > 0 {
		minRating = strconv.FormatFloat(q.MinRating, 'f', -1, 64)
	}

	tier := string(q.Tier)
	if tier == "" {
		tier = string(domain.TierAll)
	}

	sortOptions := make([]option, 0, len(domain.SortKeys))
	for _, key := range domain.SortKeys {
		sortOptions = append(sortOptions, option{string(key), key.Label()})
	}

	return g.El("form",
		Method("get"),
		Action("/#tools"),
		Role("search"),
		g.Attr("data-catalog-search", ""),
		Class("mx-auto mt-12 flex max-w-4xl flex-col gap-3 md:flex-row"),
		Input(Type("hidden"), Name("category"), Value(string(q.Category))),
		g.If(view == ViewList, Input(Type("hidden"), Name("view"), Value(string(view)))),
		g.If(lang != "" && lang != "en", Input(Type("hidden"), Name("lang"), Value(lang))),
		Input(
			Type("search"),
			Name("q"),
			Value(q.Search),
			Placeholder("Search tools..."),
			g.Attr("aria-label", "Search tools"),
			Class("flex-1 rounded-xl border border-gray-200 px-4 py-3 dark:border-white/10 dark:bg-gray-950"),
		),
		selectBox("sort", "Sort by", string(q.Sort), sortOptions),
		selectBox("tier", "Plan", tier, tierOptions),
		selectBox("min_rating", "Rating", minRating, ratingOptions),
		Button(Type("submit"), Class("btn btn-primary"), g.Text("Search")),
	)
}

func selectBox(name, label, current string, options []option) g.Node {
	return Select(
		Name(name),
		g.Attr("aria-label", label),
		Class("rounded-xl border border-gray-200 px-3 py-3 dark:border-white/10 dark:bg-gray-950"),
		g.Map(options, func(o option) g.Node {
			return Option(Value(o.value), g.If(o.value == current, Selected()), g.Text(o.label))
		}),
	)
}

func categoryPills(counts []services.CategoryCount, q domain.CatalogQuery, view View, lang string) g.Node {
	return Div(
		Class("mt-8 flex flex-wrap justify-center gap-2"),
		Role("tablist"),
		g.Map(counts, func(c services.CategoryCount) g.Node {
			target := q
			target.Category = c.Category.ID
			active := c.Category.ID == q.Category

			pillClass := "rounded-full px-4 py-2 text-sm font-medium transition"
			if active {
				pillClass += " bg-emerald-600 text-white shadow"
			} else {
				pillClass += " bg-white text-gray-700 hover:bg-emerald-50 dark:bg-gray-800 dark:text-gray-200"
			}

			return A(
				Href(catalogURL(target, view, lang)),
				Class(pillClass),
				Role("tab"),
				g.Attr("aria-selected", strconv.FormatBool(active)),
				g.Attr("data-category", string(c.Category.ID)),
				g.Text(c.Category.Name),
				Span(Class("ms-2 rounded-full bg-black/10 px-2 text-xs"), g.Text(strconv.Itoa(c.Count))),
			)
		}),
	)
}

func viewSwitch(q domain.CatalogQuery, view View, lang string) g.Node {
	link := func(v View, label string) g.Node {
		linkClass := "rounded-lg px-3 py-1"
		if v == view {
			linkClass += " bg-white shadow dark:bg-gray-800"
		}
		return A(
			Href(catalogURL(q, v, lang)),
			Class(linkClass),
			g.Attr("aria-pressed", strconv.FormatBool(v == view)),
			g.Text(label),
		)
	}

	return Div(
		Class("flex gap-1"),
		link(ViewGrid, "Grid"),
		link(ViewList, "List"),
	)
}

func emptyState(lang string) g.Node {
	return Div(
		Class("mt-16 text-center"),
		g.Attr("data-empty", ""),
		P(Class("text-xl font-semibold"), g.Text("No tools found")),
		P(Class("mt-2 text-gray-500"), g.Text("Try adjusting your search or filter criteria.")),
		A(Href(catalogURL(domain.DefaultCatalogQuery(), ViewGrid, lang)), Class("btn btn-ghost mt-6"), g.Text("Clear filters")),
	)
}

func toolList(tools []domain.Tool, view View) g.Node {
	listClass := "mt-6 grid gap-6 md:grid-cols-2 lg:grid-cols-4"
	if view == ViewList {
		listClass = "mt-6 flex flex-col gap-4"
	}

	return Ul(
		Class(listClass),
		g.Attr("data-tool-list", string(view)),
		g.Map(tools, func(tool domain.Tool) g.Node {
			return Li(toolCard(tool, view))
		}),
	)
}

func toolCard(tool domain.Tool, view View) g.Node {
	cardClass := "group relative h-full rounded-2xl bg-white p-6 shadow-sm transition hover:shadow-xl dark:bg-gray-950"
	if view == ViewList {
		cardClass = "group relative flex items-start gap-6 rounded-2xl bg-white p-6 shadow-sm dark:bg-gray-950"
	}

	return Article(
		Class(cardClass),
		g.Attr("data-tool-id", strconv.Itoa(tool.ID)),
		Div(
			Class("absolute end-4 top-4 flex gap-1"),
			g.If(tool.IsNew, Span(Class("badge bg-emerald-500 text-white"), g.Text("NEW"))),
			g.If(tool.IsPremium, Span(Class("badge bg-amber-400 text-gray-900"), g.Text("PREMIUM"))),
		),
		Div(
			Class("mb-4 inline-flex rounded-xl bg-gradient-to-r p-3 text-white "+tool.Gradient),
			Span(Class("icon icon-"+tool.Icon), g.Attr("aria-hidden", "true")),
		),
		Div(
			H3(Class("text-lg font-semibold"), g.Text(tool.Title)),
			P(Class("mt-2 text-sm text-gray-600 dark:text-gray-300"), g.Text(tool.Description)),
			Ul(
				Class("mt-4 flex flex-wrap gap-2"),
				g.Map(tool.Features, func(feature string) g.Node {
					return Li(Class("rounded-full bg-gray-100 px-2 py-1 text-xs dark:bg-white/10"), g.Text(feature))
				}),
			),
			Div(
				Class("mt-4 flex items-center justify-between text-sm"),
				Span(
					Class("flex items-center gap-1 text-amber-500"),
					g.Attr("aria-label", "Rated "+strconv.FormatFloat(tool.Rating, 'f', 1, 64)),
					g.Text("★ "+strconv.FormatFloat(tool.Rating, 'f', 1, 64)),
				),
				Span(Class("text-gray-500"), g.Text(tool.Users+" users")),
			),
		),
	)
}
