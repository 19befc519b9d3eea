package pages

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/desertaaed/landing/internal/components"
	"github.com/desertaaed/landing/internal/content"
	"github.com/desertaaed/landing/internal/logger"
	"github.com/desertaaed/landing/internal/reveal"
	"github.com/desertaaed/landing/internal/structpages"
)

type indexPage struct{}

type indexProps struct {
	site *Site
	app  components.AppProps
}

// Props mounts a new view for every page load.
func (indexPage) Props(r *http.Request, c *content.Page, store *reveal.Store, site *Site, lggr logger.Logger) (indexProps, error) {
	view := store.Mount()
	lggr.Debugw("view mounted", "view", view.ID)

	urls := make(map[string]string)
	for _, el := range store.Elements() {
		u, err := structpages.URLFor(r.Context(), revealPage{}, "view", view.ID, "element", el)
		if err != nil {
			return indexProps{}, err
		}
		urls[el] = u
	}
	unmountURL, err := structpages.URLFor(r.Context(), unmountPage{}, view.ID)
	if err != nil {
		return indexProps{}, err
	}

	return indexProps{
		site: site,
		app: components.AppProps{
			Content:   c,
			RevealURL: func(el string) string { return urls[el] },
			Visible: func(el string) bool {
				visible, _ := view.Visible(el)
				return visible
			},
			UnmountURL: unmountURL,
		},
	}, nil
}

func (indexPage) Page(p indexProps) templ.Component {
	return components.Component(components.Document(p.site.document(), components.App(p.app)))
}
