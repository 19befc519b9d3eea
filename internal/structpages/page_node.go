package structpages

import (
	"fmt"
	"iter"
	"path"
	"reflect"
	"slices"
	"strings"
)

// PageNode is one page in the parsed tree.
type PageNode struct {
	Name        string
	Title       string
	Method      string
	Route       string
	Value       reflect.Value
	Props       *reflect.Method
	Config      *reflect.Method
	Middlewares *reflect.Method
	Components  map[string]*reflect.Method
	Parent      *PageNode
	Children    []*PageNode
}

// FullRoute joins the routes of the node and all its parents.
func (pn *PageNode) FullRoute() string {
	if pn.Parent == nil {
		return pn.Route
	}
	return path.Join(pn.Parent.FullRoute(), pn.Route)
}

// All iterates the subtree rooted at pn, depth first, parents before children.
func (pn *PageNode) All() iter.Seq[*PageNode] {
	return func(yield func(*PageNode) bool) {
		walk(pn, yield)
	}
}

func walk(pn *PageNode, yield func(*PageNode) bool) bool {
	if !yield(pn) {
		return false
	}
	for _, child := range pn.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

func (pn PageNode) String() string {
	var sb strings.Builder
	sb.WriteString("PageNode{")
	sb.WriteString("\n  name: " + pn.Name)
	sb.WriteString("\n  title: " + pn.Title)
	sb.WriteString("\n  route: " + pn.Method + " " + pn.Route)
	sb.WriteString("\n  props: " + formatMethod(pn.Props))
	sb.WriteString("\n  config: " + formatMethod(pn.Config))
	sb.WriteString("\n  middlewares: " + formatMethod(pn.Middlewares))
	names := make([]string, 0, len(pn.Components))
	for name := range pn.Components {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		sb.WriteString("\n  component: " + name + " -> " + formatMethod(pn.Components[name]))
	}
	for i, child := range pn.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		for _, line := range strings.SplitAfter(strings.TrimRight(child.String(), "\n"), "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}

func formatMethod(method *reflect.Method) string {
	if method == nil || method.Func == (reflect.Value{}) {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", method.Type.In(0).String(), method.Name)
}
