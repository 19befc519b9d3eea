//lint:file-ignore U1000 Ignore unused code in test file

package structpages

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTag(t *testing.T) {
	type route struct {
		Method, Path, Title string
	}
	tests := []struct {
		name  string
		route string
		want  route
	}{
		{
			name:  "Empty route",
			route: "",
			want:  route{Method: methodAll, Path: "/"},
		},
		{
			name:  "Only path",
			route: "/example",
			want:  route{Method: methodAll, Path: "/example"},
		},
		{
			name:  "Method and path",
			route: "POST /example",
			want:  route{Method: http.MethodPost, Path: "/example"},
		},
		{
			name:  "Lower case method",
			route: "delete /views/{view}",
			want:  route{Method: http.MethodDelete, Path: "/views/{view}"},
		},
		{
			name:  "Method, path, and title",
			route: "GET / Desert AAED",
			want:  route{Method: http.MethodGet, Path: "/", Title: "Desert AAED"},
		},
		{
			name:  "Path and title",
			route: "/healthz Health check",
			want:  route{Method: methodAll, Path: "/healthz", Title: "Health check"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, path, title := parseTag(tt.route)
			got := route{Method: method, Path: path, Title: title}
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("parseTag(%q) mismatch (-got +want):\n%s", tt.route, diff)
			}
		})
	}
}

type parseChild struct{}

func (parseChild) Page() testComponent                        { return testComponent{} }
func (parseChild) Features() testComponent                    { return testComponent{} }
func (parseChild) Props(r *http.Request) (greeting, error)    { return greeting{}, nil }
func (parseChild) PageConfig(r *http.Request) (string, error) { return "Page", nil }
func (parseChild) helper() testComponent                      { return testComponent{} }

type parseGrandChild struct{}

func (*parseGrandChild) Page() testComponent { return testComponent{} }

type parseMiddle struct {
	grand *parseGrandChild `route:"POST /grand Grand child"`
}

type parseTop struct {
	child  parseChild  `route:"GET /child Child"`
	middle parseMiddle `route:"/middle"`
	skip   parseChild
}

func TestParsePageTree(t *testing.T) {
	pc, err := parsePageTree("/", "Top", &parseTop{})
	if err != nil {
		t.Fatalf("parsePageTree failed: %v", err)
	}
	root := pc.root
	if root.Title != "Top" {
		t.Errorf("expected root title %q, got %q", "Top", root.Title)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}

	child := root.Children[0]
	var components []string
	for name := range child.Components {
		components = append(components, name)
	}
	if diff := cmp.Diff(len(components), 2); diff != "" {
		t.Errorf("component count mismatch (-got +want):\n%s", diff)
	}
	for _, name := range []string{"Page", "Features"} {
		if child.Components[name] == nil {
			t.Errorf("expected component %s", name)
		}
	}
	if child.Props == nil || child.Config == nil {
		t.Errorf("expected Props and PageConfig to be detected: %s", child)
	}

	grand := root.Children[1].Children[0]
	if got := grand.FullRoute(); got != "/middle/grand" {
		t.Errorf("expected full route %q, got %q", "/middle/grand", got)
	}
	if grand.Method != http.MethodPost || grand.Title != "Grand child" {
		t.Errorf("unexpected grand child %s %q", grand.Method, grand.Title)
	}
	if grand.Parent != root.Children[1] {
		t.Errorf("grand child parent not linked")
	}
}
