package components

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/desertaaed/landing/internal/content"
	"github.com/desertaaed/landing/internal/icons"
	"github.com/desertaaed/landing/internal/motion"
)

const subtitleDelay = 500 * time.Millisecond

// Hero is the full viewport banner. Its title drops in and its subtitle
// fades in on mount; the call to action reacts to hover and press.
func Hero(hero content.Hero) g.Node {
	title, subtitle, cta := motion.DropIn(), motion.FadeOnMount(subtitleDelay), motion.Pressable()
	return h.Header(h.Class("relative h-screen flex items-center justify-center overflow-hidden"),
		h.Div(h.Class("absolute inset-0 bg-black opacity-50")),
		h.Div(h.Class("relative z-10 text-center text-white px-4"),
			h.H1(h.Class("text-6xl font-bold mb-6 "+title.Class(title.Initial)), g.Text(hero.Title)),
			h.P(
				h.Class("text-xl mb-8 "+subtitle.Class(subtitle.Initial)),
				g.If(subtitle.Style() != "", h.Style(subtitle.Style())),
				g.Text(hero.Subtitle),
			),
			h.Button(
				h.Type("button"),
				h.Class("bg-amber-500 text-white px-8 py-3 rounded-full text-lg font-semibold hover:bg-amber-600 "+cta.Class(cta.Initial)),
				g.Text(hero.CTA),
			),
		),
	)
}

// RiskBanner is the dark disclosure strip closing the page.
func RiskBanner(text string) g.Node {
	return h.Section(h.Class("py-10 bg-gray-900 text-white"),
		h.Div(h.Class("max-w-4xl mx-auto px-4 flex items-center gap-4"),
			icons.Icon(icons.ExclamationTriangle, "h-6 w-6 shrink-0 text-amber-500"),
			h.P(h.Class("text-sm"), g.Text(text)),
		),
	)
}
