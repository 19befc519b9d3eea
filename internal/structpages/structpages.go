package structpages

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/angelofallars/htmx-go"
)

// ErrComponentNotFound is reported when the page config names a component the
// page does not have.
var ErrComponentNotFound = errors.New("component not found")

// MiddlewareFunc wraps the handler of a single page.
type MiddlewareFunc func(http.Handler, *PageNode) http.Handler

// ErrorHandler answers a request whose page failed to render.
type ErrorHandler func(http.ResponseWriter, *http.Request, error)

// PageConfig picks the component to render for a request.
type PageConfig func(*http.Request) (string, error)

type StructPages struct {
	onError     ErrorHandler
	middlewares []MiddlewareFunc
	pageConfig  PageConfig
}

type Option func(*StructPages)

func New(options ...Option) *StructPages {
	sp := &StructPages{
		onError: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		pageConfig: HTMXPageConfig,
	}
	for _, opt := range options {
		opt(sp)
	}
	return sp
}

func WithErrorHandler(onError ErrorHandler) Option {
	return func(sp *StructPages) {
		sp.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every page. The first one is
// the outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(sp *StructPages) {
		sp.middlewares = append(sp.middlewares, middlewares...)
	}
}

func WithDefaultPageConfig(config PageConfig) Option {
	return func(sp *StructPages) {
		sp.pageConfig = config
	}
}

// MountPages parses page and registers every routable node on router. The
// initArgs are injected into Init, Props, PageConfig, Middlewares and
// component methods by type.
func (sp *StructPages) MountPages(router Router, page any, route, title string, initArgs ...any) (*PageNode, error) {
	pc, err := parsePageTree(route, title, page, initArgs...)
	if err != nil {
		return nil, err
	}
	for node := range pc.root.All() {
		if err := sp.registerPage(router, pc, node); err != nil {
			return nil, err
		}
	}
	return pc.root, nil
}

func (sp *StructPages) registerPage(router Router, pc *parseContext, node *PageNode) error {
	handler, err := sp.buildHandler(pc, node)
	if err != nil {
		return err
	}
	if handler == nil {
		return nil
	}
	if node.Middlewares != nil {
		res, err := pc.callMethod(node, node.Middlewares)
		if err != nil {
			return fmt.Errorf("calling Middlewares on %s: %w", node.Name, err)
		}
		var mws []MiddlewareFunc
		ok := len(res) == 1
		if ok {
			mws, ok = res[0].Interface().([]MiddlewareFunc)
		}
		if !ok {
			return fmt.Errorf("middlewares method on %s must return []MiddlewareFunc", node.Name)
		}
		for _, mw := range mws {
			handler = mw(handler, node)
		}
	}
	for i := len(sp.middlewares) - 1; i >= 0; i-- {
		handler = sp.middlewares[i](handler, node)
	}
	handler = withParseContext(handler, pc)
	router.HandleMethod(node.Method, node.FullRoute(), handler)
	return nil
}

func (sp *StructPages) buildHandler(pc *parseContext, node *PageNode) (http.Handler, error) {
	if h := sp.asHandler(node.Value); h != nil {
		return h, nil
	}
	if len(node.Components) == 0 {
		return nil, nil
	}
	if node.Config == nil && node.Components["Page"] == nil {
		return nil, fmt.Errorf("page %s has components but no Page component", node.Name)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, err := sp.componentName(pc, node, r)
		if err != nil {
			sp.onError(w, r, err)
			return
		}
		method, ok := node.Components[name]
		if !ok {
			sp.onError(w, r, fmt.Errorf("%w: %s.%s", ErrComponentNotFound, node.Name, name))
			return
		}

		var props []reflect.Value
		if node.Props != nil {
			res, err := pc.callMethod(node, node.Props, reflect.ValueOf(r))
			if err == nil {
				props, err = extractError(res)
			}
			if err != nil {
				sp.onError(w, r, fmt.Errorf("props for %s: %w", node.Name, err))
				return
			}
		}

		comp, err := pc.callComponentMethod(node, method, props...)
		if err != nil {
			sp.onError(w, r, err)
			return
		}

		bw := newBuffered(w)
		defer bw.release()
		bw.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := comp.Render(r.Context(), bw); err != nil {
			sp.onError(w, r, fmt.Errorf("rendering %s.%s: %w", node.Name, name, err))
			return
		}
		if htmx.IsHTMX(r) && name == "Page" {
			// a full page answering an htmx request replaces the whole body
			if err := htmx.NewResponse().Retarget("body").Write(bw); err != nil {
				sp.onError(w, r, err)
				return
			}
		}
		_ = bw.close()
	}), nil
}

func (sp *StructPages) componentName(pc *parseContext, node *PageNode, r *http.Request) (string, error) {
	if node.Config == nil {
		return sp.pageConfig(r)
	}
	res, err := pc.callMethod(node, node.Config, reflect.ValueOf(r))
	if err != nil {
		return "", err
	}
	res, err = extractError(res)
	if err != nil {
		return "", err
	}
	if len(res) != 1 || res[0].Kind() != reflect.String {
		return "", fmt.Errorf("PageConfig on %s must return (string, error)", node.Name)
	}
	return res[0].String(), nil
}

type errHandler interface {
	ServeHTTP(http.ResponseWriter, *http.Request) error
}

func (sp *StructPages) asHandler(v reflect.Value) http.Handler {
	typ := v.Type()
	switch {
	case typ.Implements(handlerType):
		return v.Interface().(http.Handler)
	case typ.Implements(errHandlerType):
		h := v.Interface().(errHandler)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := h.ServeHTTP(w, r); err != nil {
				sp.onError(w, r, err)
			}
		})
	}
	return nil
}
