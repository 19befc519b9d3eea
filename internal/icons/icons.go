// Package icons renders the named vector glyphs embedded in the binary.
package icons

import (
	"embed"
	"html"
	"io/fs"
	"path"
	"slices"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

//go:embed glyphs/*.svg
var glyphs embed.FS

const (
	Shield              = "shield"
	ChartLine           = "chart-line"
	Globe               = "globe"
	ExclamationTriangle = "exclamation-triangle"
)

// names lists the available glyphs, sorted.
func names() []string {
	entries, err := fs.ReadDir(glyphs, "glyphs")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(names)
	return names
}

// Icon renders glyph name as inline SVG carrying class. An unknown name
// renders an empty placeholder of the same class so the layout holds.
func Icon(name, class string) g.Node {
	svg, err := glyphs.ReadFile(path.Join("glyphs", name+".svg"))
	if err != nil {
		return h.Span(h.Class(class), h.Data("icon", name), h.Aria("hidden", "true"))
	}
	markup := strings.TrimSpace(string(svg))
	if class != "" {
		markup = strings.Replace(markup, "<svg ", `<svg class="`+html.EscapeString(class)+`" `, 1)
	}
	return g.Raw(markup)
}
