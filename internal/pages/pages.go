// Package pages declares the site's routes as a structpages tree.
//
// Mount [Pages] with a *content.Page, a *reveal.Store, a *Site and a
// logger.Logger as init args; page methods receive them by type.
package pages

import (
	"net/http"
	"time"

	"github.com/desertaaed/landing/internal/components"
	"github.com/desertaaed/landing/internal/content"
	"github.com/desertaaed/landing/internal/reveal"
)

// Pages is the root of the route tree. Mount it at "/".
type Pages struct {
	index   indexPage   `route:"GET / Desert AAED"`
	reveal  revealPage  `route:"POST /views/{view}/reveal/{element} Reveal"`
	unmount unmountPage `route:"DELETE /views/{view} Unmount"`
	health  healthPage  `route:"GET /healthz Health"`
}

// Site is the document configuration shared by every page.
type Site struct {
	Title       string
	HTMXSrc     string
	TailwindSrc string
	AssetsPath  string
}

func (s *Site) document() components.DocumentProps {
	return components.DocumentProps{
		Title:       s.Title,
		HTMXSrc:     s.HTMXSrc,
		TailwindSrc: s.TailwindSrc,
		AssetsPath:  s.AssetsPath,
	}
}

// Elements lists the one-shot elements of a view of page c: the features
// section, then each feature card.
func Elements(c *content.Page) []string {
	elements := []string{components.FeaturesElement}
	for i := range c.Features {
		elements = append(elements, components.FeatureElement(i))
	}
	return elements
}

// NewStore returns a store whose views carry the elements of c.
func NewStore(c *content.Page, ttl time.Duration) *reveal.Store {
	return reveal.NewStore(ttl, Elements(c)...)
}

type healthPage struct{}

func (healthPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
