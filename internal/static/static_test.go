package static

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(h http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEmbeddedStylesheet(t *testing.T) {
	rec := get(Handler(Assets), "/motion.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css"))
	for _, class := range []string{".motion-hidden", ".motion-visible", ".motion-from-raised", ".motion-press"} {
		assert.Contains(t, rec.Body.String(), class)
	}
}

func TestHandler(t *testing.T) {
	h := Handler(fstest.MapFS{
		"app.js":            {Data: []byte("console.log(1)")},
		"blob.unregistered": {Data: []byte{0, 1}},
	})

	rec := get(h, "/app.js")
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "console.log(1)", rec.Body.String())

	rec = get(h, "/app.js", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = get(h, "/blob.unregistered")
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))

	for _, path := range []string{"/", "/missing.css", "/../static.go"} {
		assert.Equal(t, http.StatusNotFound, get(h, path).Code, path)
	}
}
