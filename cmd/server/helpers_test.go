package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/trelloyes-api/internal/config"
	"github.com/phrazzld/trelloyes-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

const testAPIToken = "test-api-token-123"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           8000,
			Env:            "development",
			LogLevel:       "debug",
			BaseURL:        "http://localhost:8000",
			CORSOrigins:    []string{"*"},
			RateLimitBurst: 20,
		},
		Auth: config.AuthConfig{APIToken: testAPIToken},
	}
}

type testServer struct {
	app    *application
	router http.Handler
	logBuf *logger.TestLogBuffer
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	log, logBuf := logger.GetTestLogger(t)
	app, err := newApplication(cfg, log)
	require.NoError(t, err)

	return &testServer{app: app, router: app.setupRouter(), logBuf: logBuf}
}

// do sends a request with the test token unless authHeader overrides it.
func (ts *testServer) do(t *testing.T, method, path, body string, authHeader ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(authHeader) > 0 {
		if authHeader[0] != "" {
			req.Header.Set("Authorization", authHeader[0])
		}
	} else {
		req.Header.Set("Authorization", "Bearer "+testAPIToken)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
