package structpages

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintRoutes parses page the way MountPages does and lists the routable
// nodes, one per line: method, full route, title.
func PrintRoutes(page any, route string, initArgs ...any) (string, error) {
	pc, err := parsePageTree(route, "", page, initArgs...)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	sp := New()
	for node := range pc.root.All() {
		if len(node.Components) == 0 && sp.asHandler(node.Value) == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", node.Method, node.FullRoute(), node.Title)
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
