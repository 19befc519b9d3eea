package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/desertaaed/landing/internal/config"
	"github.com/desertaaed/landing/internal/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second
	return cfg
}

func TestHandler(t *testing.T) {
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)
	s, err := New(testConfig(t), lggr)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	tests := []struct {
		path        string
		code        int
		contentType string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/healthz", http.StatusOK, "text/plain"},
		{"/assets/motion.css", http.StatusOK, "text/css"},
		{"/assets/missing.css", http.StatusNotFound, ""},
		{"/nowhere", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.code, resp.StatusCode)
			if tt.contentType != "" {
				assert.Contains(t, resp.Header.Get("Content-Type"), tt.contentType)
			}
		})
	}
	assert.Equal(t, len(tests), logs.FilterMessage("request").Len())
	assert.Equal(t, 1, s.store.Len())
}

func TestHandlerTimeoutBeforeWriteDeadline(t *testing.T) {
	require.Less(t, handlerTimeout, writeTimeout)
	s, err := New(testConfig(t), logger.Test(t))
	require.NoError(t, err)
	assert.Equal(t, writeTimeout, s.http.WriteTimeout)
}

func TestRequestLogger(t *testing.T) {
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)
	h := requestLogger(lggr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tea", http.NoBody))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/tea", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, 5, fields["bytes"])
}

func TestRunShutsDown(t *testing.T) {
	cfg := testConfig(t)
	// reserve a free port
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	cfg.Addr = l.Addr().String()
	require.NoError(t, l.Close())

	s, err := New(cfg, logger.Test(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
