package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/desertaaed/landing/internal/content"
)

// AppProps is everything the page needs for one mounted view.
type AppProps struct {
	Content *content.Page
	// RevealURL returns the reveal endpoint of an element. A nil RevealURL
	// renders the page without triggers.
	RevealURL func(element string) string
	// Visible reports whether an element has already been revealed.
	Visible    func(element string) bool
	UnmountURL string
}

func (p AppProps) reveal(element string) Reveal {
	var r Reveal
	if p.RevealURL != nil {
		r.URL = p.RevealURL(element)
	}
	if p.Visible != nil {
		r.Visible = p.Visible(element)
	}
	return r
}

// App composes the whole page body.
func App(p AppProps) g.Node {
	c := p.Content
	features := p.reveal(FeaturesElement)

	cards := make([]g.Node, 0, len(c.Features))
	for i, f := range c.Features {
		id := FeatureElement(i)
		cards = append(cards, Feature(id, f.Icon, f.Title, f.Description, p.reveal(id)))
	}
	comparisons := make([]g.Node, 0, len(c.Comparisons))
	for _, comparison := range c.Comparisons {
		comparisons = append(comparisons, ComparisonCard(ComparisonCardProps{
			Title:       comparison.Title,
			Points:      comparison.Points,
			Highlighted: comparison.Highlighted,
		}))
	}

	return h.Div(h.Class("min-h-screen bg-gradient-to-b from-amber-50 to-amber-100"),
		Hero(c.Hero),
		FeaturesSection(FeaturesHeading(c.FeaturesHeading, features.Visible), features, cards...),
		ComparisonSection(c.ComparisonHeading, comparisons...),
		RiskBanner(c.Disclaimer),
		g.If(p.UnmountURL != "", h.Div(
			g.Attr("hidden"),
			g.Attr("hx-delete", p.UnmountURL),
			g.Attr("hx-trigger", "pagehide from:window"),
			g.Attr("hx-swap", "none"),
		)),
	)
}
