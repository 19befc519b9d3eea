// Package components renders the landing page markup with gomponents. The
// page level nodes are exposed as templ components through [Component].
package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Element ids of the one-shot reveal targets.
const (
	FeaturesElement        = "features"
	FeaturesHeadingElement = "features-heading"
)

// FeatureElement returns the element id of the i-th feature card, counting
// from zero.
func FeatureElement(i int) string {
	return fmt.Sprintf("feature-%d", i+1)
}

// Reveal binds an element to its one-shot reveal endpoint.
type Reveal struct {
	// URL receives the POST on first intersection. Empty disables the
	// trigger.
	URL     string
	Visible bool
}

// intersectOnce fires a single POST to url the first time the element
// crosses threshold, swapping the response over target.
func intersectOnce(url, target, threshold string) g.Node {
	trigger := "intersect once"
	if threshold != "" {
		trigger += " threshold:" + threshold
	}
	return g.Group{
		g.Attr("hx-post", url),
		g.Attr("hx-trigger", trigger),
		g.Attr("hx-target", target),
		g.Attr("hx-swap", "outerHTML"),
	}
}

// Component adapts a gomponents node into a templ component.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}
