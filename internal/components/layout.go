package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type DocumentProps struct {
	Title       string
	HTMXSrc     string
	TailwindSrc string
	// AssetsPath is where the embedded assets are mounted.
	AssetsPath string
}

// noscriptStyle shows hidden elements when no script can reveal them.
const noscriptStyle = `<noscript><style>.motion-hidden{opacity:1;transform:none}</style></noscript>`

func Document(p DocumentProps, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(p.Title)),
				g.If(p.TailwindSrc != "", h.Script(h.Src(p.TailwindSrc))),
				g.If(p.HTMXSrc != "", h.Script(h.Src(p.HTMXSrc), h.Defer())),
				h.Link(h.Rel("stylesheet"), h.Href(p.AssetsPath+"/motion.css")),
				g.Raw(noscriptStyle),
			),
			h.Body(g.Group(body)),
		),
	)
}
