package structpages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_mixedCase(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{name: "Empty string", s: "", want: ""},
		{name: "Single word", s: "content", want: "Content"},
		{name: "Hyphenated words", s: "features-heading", want: "FeaturesHeading"},
		{name: "Trailing number", s: "feature-2", want: "Feature2"},
		{name: "Mixed case with hyphens", s: "todo-List", want: "TodoList"},
		{name: "Double hyphen", s: "a--b", want: "AB"},
		{name: "Spaces are invalid", s: "hello world", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(mixedCase(tt.s), tt.want); diff != "" {
				t.Errorf("mixedCase() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestHTMXPageConfig(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
		wantErr bool
	}{
		{name: "plain request", want: "Page"},
		{name: "target without htmx", headers: map[string]string{"HX-Target": "features-heading"}, want: "Page"},
		{name: "htmx without target", headers: map[string]string{"HX-Request": "true"}, want: "Page"},
		{
			name:    "htmx with target",
			headers: map[string]string{"HX-Request": "true", "HX-Target": "features-heading"},
			want:    "FeaturesHeading",
		},
		{
			name:    "htmx with invalid target",
			headers: map[string]string{"HX-Request": "true", "HX-Target": "a b"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			got, err := HTMXPageConfig(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HTMXPageConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("HTMXPageConfig() = %q, want %q", got, tt.want)
			}
		})
	}
}
