package structpages

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/jackielii/ctxkey"
)

var pcCtx = ctxkey.New[*parseContext]("structpages.parseContext", nil)

func withParseContext(next http.Handler, pc *parseContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(pcCtx.WithValue(r.Context(), pc)))
	})
}

// URLFor returns the route of the page whose type matches page, with its
// {name} segments filled from args. Args are either a single map[string]any,
// name/value pairs, or positional values in segment order.
//
// page may also be a func(*PageNode) bool selecting the node.
func URLFor(ctx context.Context, page any, args ...any) (string, error) {
	pc := pcCtx.Value(ctx)
	if pc == nil {
		return "", errors.New("urlfor: parse context not found in context")
	}
	pattern, err := pc.urlFor(page)
	if err != nil {
		return "", err
	}
	return formatPathSegments(pattern, args...)
}

func (pc *parseContext) urlFor(page any) (string, error) {
	if match, ok := page.(func(*PageNode) bool); ok {
		for node := range pc.root.All() {
			if match(node) {
				return node.FullRoute(), nil
			}
		}
		return "", errors.New("urlfor: no page node matched")
	}
	want := pointerType(reflect.TypeOf(page))
	for node := range pc.root.All() {
		if pointerType(node.Value.Type()) == want {
			return node.FullRoute(), nil
		}
	}
	return "", fmt.Errorf("urlfor: no page node found for %s", want)
}

func pointerType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t
	}
	return reflect.PointerTo(t)
}

func formatPathSegments(pattern string, args ...any) (string, error) {
	segments, err := parseSegments(pattern)
	if err != nil {
		return pattern, err
	}
	var params []int
	for i, seg := range segments {
		if seg.param {
			params = append(params, i)
		}
	}
	if len(params) == 0 {
		return joinSegments(segments), nil
	}

	values := make(map[string]any)
	switch {
	case len(args) == 1 && isMap(args[0]):
		values = args[0].(map[string]any)
	case len(args) == len(params):
		for i, idx := range params {
			values[segments[idx].name] = args[i]
		}
	case len(args) > 0 && len(args)%2 == 0:
		for i := 0; i < len(args); i += 2 {
			key, ok := args[i].(string)
			if !ok {
				return pattern, fmt.Errorf("pattern %s: argument %d is not a parameter name", pattern, i)
			}
			values[key] = args[i+1]
		}
	default:
		return pattern, fmt.Errorf("pattern %s: expected %d arguments, got %d", pattern, len(params), len(args))
	}

	for _, idx := range params {
		v, ok := values[segments[idx].name]
		if !ok {
			return pattern, fmt.Errorf("pattern %s: argument %s not found in provided args", pattern, segments[idx].name)
		}
		segments[idx].value = fmt.Sprint(v)
	}
	return joinSegments(segments), nil
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

type segment struct {
	name  string
	param bool
	value string
}

func parseSegments(pattern string) ([]segment, error) {
	var segments []segment
	rest := pattern
	for rest != "" {
		start := strings.Index(rest, "{")
		if start == -1 {
			segments = append(segments, segment{name: rest})
			break
		}
		if start > 0 {
			segments = append(segments, segment{name: rest[:start]})
		}
		rest = rest[start+1:]
		end := strings.Index(rest, "}")
		if end == -1 {
			return nil, fmt.Errorf("pattern %s: unmatched {", pattern)
		}
		name := rest[:end]
		rest = rest[end+1:]
		if name == "$" {
			continue
		}
		segments = append(segments, segment{name: strings.TrimSuffix(name, "..."), param: true})
	}
	return segments, nil
}

func joinSegments(segments []segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		if seg.param {
			sb.WriteString(seg.value)
		} else {
			sb.WriteString(seg.name)
		}
	}
	return sb.String()
}
