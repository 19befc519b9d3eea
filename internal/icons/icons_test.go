package icons

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func render(t *testing.T, name, class string) string {
	t.Helper()
	var sb strings.Builder
	if err := Icon(name, class).Render(&sb); err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return sb.String()
}

func TestGlyphNames(t *testing.T) {
	want := []string{ChartLine, ExclamationTriangle, Globe, Shield}
	if diff := cmp.Diff(want, names()); diff != "" {
		t.Errorf("names() mismatch (-want +got):\n%s", diff)
	}
}

func TestIcon(t *testing.T) {
	for _, name := range names() {
		t.Run(name, func(t *testing.T) {
			got := render(t, name, "w-12 h-12")
			if !strings.HasPrefix(got, `<svg class="w-12 h-12" `) {
				t.Errorf("expected class on svg root, got %.60q", got)
			}
			if strings.Count(got, `class="w-12 h-12"`) != 1 {
				t.Errorf("expected class exactly once in %q", got)
			}
		})
	}
}

func TestIconWithoutClass(t *testing.T) {
	if got := render(t, Globe, ""); !strings.HasPrefix(got, "<svg xmlns=") {
		t.Errorf("expected untouched svg, got %.60q", got)
	}
}

func TestUnknownIcon(t *testing.T) {
	got := render(t, "rocket", "w-6")
	want := `<span class="w-6" data-icon="rocket" aria-hidden="true"></span>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
