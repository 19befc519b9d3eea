package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ComparisonCardProps struct {
	Title  string
	Points []string
	// Highlighted selects the amber variant.
	Highlighted bool
}

// ComparisonCard lists Points in order under Title. Duplicate points render
// as separate items; no points render an empty list.
func ComparisonCard(p ComparisonCardProps) g.Node {
	variant := "bg-white"
	if p.Highlighted {
		variant = "bg-amber-500 text-white"
	}
	return h.Div(
		h.Class("p-6 rounded-lg "+variant),
		h.Data("highlighted", strconv.FormatBool(p.Highlighted)),
		h.H3(h.Class("text-2xl font-semibold mb-4"), g.Text(p.Title)),
		h.Ul(h.Class("space-y-3"),
			g.Map(p.Points, func(point string) g.Node {
				return h.Li(h.Class("flex items-center gap-2"),
					h.Span(h.Class("text-lg"), g.Text("•")),
					g.Text(point),
				)
			}),
		),
	)
}

func ComparisonSection(heading string, cards ...g.Node) g.Node {
	return h.Section(h.Class("py-20 px-4 bg-amber-50"),
		h.Div(h.Class("max-w-6xl mx-auto"),
			h.H2(h.Class("text-4xl font-bold text-center mb-16"), g.Text(heading)),
			h.Div(h.Class("grid md:grid-cols-2 gap-8"), g.Group(cards)),
		),
	)
}
