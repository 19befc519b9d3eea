package structpages

import (
	"cmp"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

type parseContext struct {
	root *PageNode
	args *argRegistry
}

func parsePageTree(route, title string, page any, initArgs ...any) (*parseContext, error) {
	pc := &parseContext{args: newArgRegistry()}
	for _, v := range initArgs {
		if err := pc.args.addArg(v); err != nil {
			return nil, fmt.Errorf("error adding argument to registry: %w", err)
		}
	}
	root, err := pc.parsePage(route, "", page)
	if err != nil {
		return nil, err
	}
	if title != "" {
		root.Title = title
	}
	pc.root = root
	return pc, nil
}

func (pc *parseContext) parsePage(route, fieldName string, page any) (*PageNode, error) {
	if page == nil {
		return nil, errors.New("page is nil")
	}
	st, pt := reflect.TypeOf(page), reflect.TypeOf(page)
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		pt = reflect.PointerTo(st)
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("page %s must be a struct, got %s", cmp.Or(fieldName, st.String()), st.Kind())
	}

	node := &PageNode{Value: reflect.ValueOf(page), Name: cmp.Or(fieldName, st.Name())}
	node.Method, node.Route, node.Title = parseTag(route)

	for i := range st.NumField() {
		field := st.Field(i)
		childRoute, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		typ := field.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		child, err := pc.parsePage(childRoute, field.Name, reflect.New(typ).Interface())
		if err != nil {
			return nil, err
		}
		child.Parent = node
		node.Children = append(node.Children, child)
	}

	var initMethod *reflect.Method
	for _, t := range []reflect.Type{st, pt} {
		for i := range t.NumMethod() {
			method := t.Method(i)
			if isPromotedMethod(&method) {
				continue
			}
			if isComponent(&method) {
				if node.Components == nil {
					node.Components = make(map[string]*reflect.Method)
				}
				node.Components[method.Name] = &method
				continue
			}
			switch method.Name {
			case "Props":
				node.Props = &method
			case "PageConfig":
				node.Config = &method
			case "Middlewares":
				node.Middlewares = &method
			case "Init":
				initMethod = &method
			}
		}
	}

	if initMethod != nil {
		res, err := pc.callMethod(node, initMethod)
		if err != nil {
			return nil, fmt.Errorf("calling Init on %s: %w", node.Name, err)
		}
		if _, err := extractError(res); err != nil {
			return nil, fmt.Errorf("calling Init on %s: %w", node.Name, err)
		}
	}
	return node, nil
}

// callMethod calls method on the node value with args, filling any remaining
// parameters with the node itself or values from the registry.
func (pc *parseContext) callMethod(pn *PageNode, method *reflect.Method, args ...reflect.Value) ([]reflect.Value, error) {
	v := pn.Value
	receiver := method.Type.In(0)
	if receiver.Kind() == reflect.Ptr && v.Kind() != reflect.Ptr {
		if !v.CanAddr() {
			return nil, fmt.Errorf("method %s needs a pointer receiver but page %s is not addressable",
				formatMethod(method), pn.Name)
		}
		v = v.Addr()
	}
	if receiver.Kind() != reflect.Ptr && v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	in := make([]reflect.Value, method.Type.NumIn())
	in[0] = v
	filled := 1
	for i := range min(len(in)-1, len(args)) {
		in[i+1] = args[i]
		filled++
	}
	pnv := reflect.ValueOf(pn)
	for i := filled; i < len(in); i++ {
		argType := method.Type.In(i)
		switch argType {
		case pnv.Type():
			in[i] = pnv
		case pnv.Type().Elem():
			in[i] = pnv.Elem()
		default:
			val, ok := pc.args.getArg(argType)
			if !ok {
				return nil, fmt.Errorf("method %s requires argument of type %s, but not found",
					formatMethod(method), argType.String())
			}
			in[i] = val
		}
	}
	return method.Func.Call(in), nil
}

func (pc *parseContext) callComponentMethod(pn *PageNode, method *reflect.Method, args ...reflect.Value) (templ.Component, error) {
	res, err := pc.callMethod(pn, method, args...)
	if err != nil {
		return nil, err
	}
	comp, ok := res[0].Interface().(templ.Component)
	if !ok || comp == nil {
		return nil, fmt.Errorf("method %s returned a nil component", formatMethod(method))
	}
	return comp, nil
}

var (
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
	componentType  = reflect.TypeOf((*templ.Component)(nil)).Elem()
	handlerType    = reflect.TypeOf((*http.Handler)(nil)).Elem()
	errHandlerType = reflect.TypeOf((*errHandler)(nil)).Elem()
)

// extractError splits a trailing error result off res.
func extractError(res []reflect.Value) ([]reflect.Value, error) {
	if len(res) == 0 || !res[len(res)-1].Type().AssignableTo(errorType) {
		return res, nil
	}
	last := res[len(res)-1]
	res = res[:len(res)-1]
	if last.IsNil() {
		return res, nil
	}
	return res, last.Interface().(error)
}

func parseTag(route string) (method, path, title string) {
	method = methodAll
	parts := strings.Fields(route)
	switch {
	case len(parts) == 0:
		return method, "/", ""
	case len(parts) == 1:
		return method, parts[0], ""
	}
	if m := strings.ToUpper(parts[0]); slices.Contains(validMethods, m) {
		return m, parts[1], strings.Join(parts[2:], " ")
	}
	return method, parts[0], strings.Join(parts[1:], " ")
}

const methodAll = "ALL"

var validMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
	methodAll,
}

func isComponent(method *reflect.Method) bool {
	return method.Type.NumOut() == 1 && method.Type.Out(0).Implements(componentType)
}

func isPromotedMethod(method *reflect.Method) bool {
	// https://github.com/golang/go/issues/73883
	pc := method.Func.Pointer()
	file, line := runtime.FuncForPC(pc).FileLine(pc)
	return file == "<autogenerated>" && line == 1
}
