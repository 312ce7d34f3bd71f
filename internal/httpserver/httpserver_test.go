package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgJWT "security-toolbox/pkg/jwt"
	"security-toolbox/pkg/log"
)

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, secret string) *HTTPServer {
	t.Helper()
	now := func() time.Time { return testNow }
	srv, err := New(log.NewNop(), Config{
		Port:            8080,
		Mode:            gin.TestMode,
		ShutdownTimeout: time.Second,
		JWTManager:      pkgJWT.New(pkgJWT.Config{SecretKey: secret, Now: now}),
		Now:             now,
	})
	require.NoError(t, err)
	srv.mapHandlers()
	return srv
}

func do(srv *HTTPServer, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	mgr := pkgJWT.New(pkgJWT.Config{SecretKey: "s"})

	tests := []struct {
		name string
		l    log.Logger
		cfg  Config
	}{
		{"no logger", nil, Config{Port: 1, ShutdownTimeout: time.Second, JWTManager: mgr}},
		{"no port", log.NewNop(), Config{ShutdownTimeout: time.Second, JWTManager: mgr}},
		{"no jwt manager", log.NewNop(), Config{Port: 1, ShutdownTimeout: time.Second}},
		{"no shutdown timeout", log.NewNop(), Config{Port: 1, JWTManager: mgr}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.l, tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestPingAndHealth(t *testing.T) {
	srv := newTestServer(t, "secret")

	w := do(srv, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"pong"`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"security-toolbox","version":"1.0.0"}`, w.Body.String())

	w = do(srv, http.MethodGet, "/live", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive","service":"security-toolbox","version":"1.0.0"}`, w.Body.String())
}

func TestSwaggerDoc(t *testing.T) {
	srv := newTestServer(t, "secret")

	w := do(srv, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Security Toolbox API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	for _, p := range []string{"/ping", "/encode_base64", "/decode_base64", "/jwt/generate", "/jwt/validate"} {
		assert.Contains(t, doc.Paths, p)
	}
}

func TestEndToEnd(t *testing.T) {
	srv := newTestServer(t, "secret")

	w := do(srv, http.MethodGet, "/encode_base64?text=hola", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"encoded_text":"aG9sYQ=="}`, w.Body.String())

	w = do(srv, http.MethodGet, "/decode_base64?encoded_text="+url.QueryEscape("aG9sYQ=="), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"decoded_text":"hola"}`, w.Body.String())

	w = do(srv, http.MethodGet, "/decode_base64?encoded_text="+url.QueryEscape("not_valid_base64!!"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid base64 encoded text"}`, w.Body.String())

	w = do(srv, http.MethodPost, "/jwt/generate", `{"payload":{"user_id":1},"expiration_minutes":10}`)
	require.Equal(t, http.StatusOK, w.Code)
	var gen struct {
		JWTToken string `json:"jwt_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gen))

	w = do(srv, http.MethodGet, "/jwt/validate?token="+url.QueryEscape(gen.JWTToken), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"payload":{"user_id":1,"exp":1768479000}}`, w.Body.String())

	w = do(srv, http.MethodGet, "/jwt/validate?token=abc.def.ghi", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid token"}`, w.Body.String())
}

func TestGenerateWithoutSecret(t *testing.T) {
	srv := newTestServer(t, "")

	w := do(srv, http.MethodPost, "/jwt/generate", `{"payload":{"user_id":1},"expiration_minutes":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Error al generar el token JWT"}`, w.Body.String())

	// The rest of the API keeps working.
	w = do(srv, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServe_GracefulShutdown(t *testing.T) {
	srv := newTestServer(t, "secret")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
