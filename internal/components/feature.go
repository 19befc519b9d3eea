package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/desertaaed/landing/internal/icons"
	"github.com/desertaaed/landing/internal/motion"
)

// Feature is a card pairing an icon glyph with a title and a description. It
// fades in the first time it enters the viewport; once visible it carries no
// trigger, so it cannot play again.
func Feature(id, icon, title, description string, reveal Reveal) g.Node {
	v := motion.FadeIn()
	state := v.Initial
	if reveal.Visible {
		state = v.StateFor(motion.InView)
	}
	return h.Div(
		h.ID(id),
		h.Class("text-center p-6 rounded-lg bg-white shadow-lg "+v.Class(state)),
		h.Data("state", string(state)),
		g.If(!reveal.Visible && reveal.URL != "", intersectOnce(reveal.URL, "this", "")),
		h.Div(h.Class("mb-4 flex justify-center"), icons.Icon(icon, "h-10 w-10 text-amber-500")),
		h.H3(h.Class("text-xl font-semibold mb-2"), g.Text(title)),
		h.P(h.Class("text-gray-600"), g.Text(description)),
	)
}

// FeaturesHeading is the heading of the features section. Its visibility is
// driven by the section, not by the heading itself.
func FeaturesHeading(text string, visible bool) g.Node {
	v := motion.FadeIn()
	state := v.Initial
	if visible {
		state = v.StateFor(motion.InView)
	}
	return h.H2(
		h.ID(FeaturesHeadingElement),
		h.Class("text-4xl font-bold text-center mb-16 "+v.Class(state)),
		h.Data("state", string(state)),
		g.Text(text),
	)
}

// FeaturesSection lays the cards out in a grid under heading. The section
// reveals the heading once 10% of it is in view.
func FeaturesSection(heading g.Node, reveal Reveal, cards ...g.Node) g.Node {
	return h.Section(
		h.ID(FeaturesElement),
		h.Class("py-20 px-4 bg-white"),
		g.If(!reveal.Visible && reveal.URL != "", intersectOnce(reveal.URL, "#"+FeaturesHeadingElement, "0.1")),
		h.Div(h.Class("max-w-6xl mx-auto"),
			heading,
			h.Div(h.Class("grid md:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}
