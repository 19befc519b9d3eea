package structpages

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router registers a handler for a method and path. Paths use the
// {name} parameter syntax shared by http.ServeMux and chi.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
}

type stdRouter struct {
	mux *http.ServeMux
}

// NewRouter wraps mux; a nil mux means http.DefaultServeMux.
func NewRouter(mux *http.ServeMux) *stdRouter {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	return &stdRouter{mux: mux}
}

func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.mux.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

type chiRouter struct {
	router chi.Router
}

// NewChiRouter adapts a chi router.
func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	if method == methodAll || method == "" {
		r.router.Handle(path, handler)
		return
	}
	r.router.Method(method, path, handler)
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// PathValue returns the named path parameter, whichever router matched.
func PathValue(r *http.Request, name string) string {
	if v := r.PathValue(name); v != "" {
		return v
	}
	return chi.URLParam(r, name)
}
