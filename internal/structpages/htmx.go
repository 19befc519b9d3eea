package structpages

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"
)

// HTMXPageConfig renders Page for ordinary requests. For htmx requests it
// renders the component named after the HX-Target element id:
//
//	HX-Target: features-heading -> FeaturesHeading()
//	HX-Target: feature-2        -> Feature2()
func HTMXPageConfig(r *http.Request) (string, error) {
	if !htmx.IsHTMX(r) {
		return "Page", nil
	}
	target, ok := htmx.GetTarget(r)
	if !ok || target == "" {
		return "Page", nil
	}
	name := mixedCase(target)
	if name == "" {
		return "", fmt.Errorf("invalid hx-target %q", target)
	}
	return name, nil
}

// mixedCase turns an element id into a method name. Ids containing spaces
// are not valid and yield "".
func mixedCase(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return ""
	}
	var sb strings.Builder
	for part := range strings.SplitSeq(s, "-") {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}
