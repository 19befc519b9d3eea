package pages

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/angelofallars/htmx-go"

	"github.com/desertaaed/landing/internal/components"
	"github.com/desertaaed/landing/internal/content"
	"github.com/desertaaed/landing/internal/logger"
	"github.com/desertaaed/landing/internal/reveal"
	"github.com/desertaaed/landing/internal/structpages"
)

// revealPage receives the first intersection of an element and answers with
// the element in its visible state.
type revealPage struct{}

type revealProps struct {
	content *content.Page
	element string
}

func (revealPage) PageConfig(r *http.Request) (string, error) {
	element := structpages.PathValue(r, "element")
	switch {
	case element == components.FeaturesElement:
		return "FeaturesHeading", nil
	case strings.HasPrefix(element, "feature-"):
		return "FeatureCard", nil
	}
	return "", fmt.Errorf("%w %q", reveal.ErrUnknownElement, element)
}

// Props records the reveal. A view that expired or was never mounted still
// gets the visible element; there is nothing left to record it on.
func (revealPage) Props(r *http.Request, c *content.Page, store *reveal.Store, lggr logger.Logger) (revealProps, error) {
	viewID := structpages.PathValue(r, "view")
	element := structpages.PathValue(r, "element")
	if !slices.Contains(store.Elements(), element) {
		return revealProps{}, fmt.Errorf("%w %q", reveal.ErrUnknownElement, element)
	}

	first, err := store.Reveal(viewID, element)
	switch {
	case errors.Is(err, reveal.ErrUnknownView):
		lggr.Debugw("reveal for unknown view", "view", viewID, "element", element)
	case err != nil:
		return revealProps{}, err
	case first:
		lggr.Debugw("element revealed", "view", viewID, "element", element)
	}
	return revealProps{content: c, element: element}, nil
}

func (revealPage) FeaturesHeading(p revealProps) templ.Component {
	return components.Component(components.FeaturesHeading(p.content.FeaturesHeading, true))
}

func (revealPage) FeatureCard(p revealProps) templ.Component {
	for i, f := range p.content.Features {
		if id := components.FeatureElement(i); id == p.element {
			return components.Component(components.Feature(id, f.Icon, f.Title, f.Description, components.Reveal{Visible: true}))
		}
	}
	return templ.NopComponent
}

// unmountPage drops a view when the page that mounted it goes away.
type unmountPage struct {
	store *reveal.Store
	lggr  logger.Logger
}

func (p *unmountPage) Init(store *reveal.Store, lggr logger.Logger) {
	p.store = store
	p.lggr = lggr
}

func (p *unmountPage) ServeHTTP(w http.ResponseWriter, r *http.Request) error {
	id := structpages.PathValue(r, "view")
	p.store.Unmount(id)
	p.lggr.Debugw("view unmounted", "view", id)
	return htmx.NewResponse().
		Reswap(htmx.SwapNone).
		StatusCode(http.StatusNoContent).
		Write(w)
}
