package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"security-toolbox/internal/token"
	"security-toolbox/internal/token/usecase"
	"security-toolbox/pkg/discord"
	pkgJWT "security-toolbox/pkg/jwt"
	"security-toolbox/pkg/log"
)

const testSecret = "handler-test-secret"

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

type sentError struct {
	title, description string
	err                error
}

type fakeDiscord struct {
	errs chan sentError
}

func (f *fakeDiscord) ReportBug(context.Context, string) error { return nil }
func (f *fakeDiscord) SendError(_ context.Context, title, description string, err error) error {
	f.errs <- sentError{title: title, description: description, err: err}
	return nil
}
func (f *fakeDiscord) Close() error { return nil }

func newTestRouter(secret string, c *testClock) *gin.Engine {
	return newTestRouterWithDiscord(secret, c, nil)
}

func newTestRouterWithDiscord(secret string, c *testClock, d discord.IDiscord) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	mgr := pkgJWT.New(pkgJWT.Config{SecretKey: secret, Now: c.now})
	New(l, usecase.New(l, mgr, c.now), d).RegisterRoutes(r)
	return r
}

func postGenerate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getValidate(r *gin.Engine, tok string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt/validate?token="+url.QueryEscape(tok), nil))
	return w
}

func generateToken(t *testing.T, r *gin.Engine, body string) string {
	t.Helper()
	w := postGenerate(r, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp generateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, strings.Count(resp.JWTToken, "."))
	return resp.JWTToken
}

func TestGenerateThenValidate(t *testing.T) {
	r := newTestRouter(testSecret, &testClock{t: testNow})

	tok := generateToken(t, r, `{"payload":{"user_id":1},"expiration_minutes":10}`)

	w := getValidate(r, tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"payload":{"user_id":1,"exp":1768479000}}`, w.Body.String())
}

func TestGenerate_PayloadExpIsOverwritten(t *testing.T) {
	r := newTestRouter(testSecret, &testClock{t: testNow})

	tok := generateToken(t, r, `{"payload":{"exp":5,"nested":{"a":[1,2.5,"x"]}},"expiration_minutes":10.0}`)

	w := getValidate(r, tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"payload":{"exp":1768479000,"nested":{"a":[1,2.5,"x"]}}}`, w.Body.String())
}

func TestValidate_Expired(t *testing.T) {
	c := &testClock{t: testNow}
	r := newTestRouter(testSecret, c)

	tok := generateToken(t, r, `{"payload":{"user_id":1},"expiration_minutes":1}`)
	c.t = testNow.Add(2 * time.Minute)

	w := getValidate(r, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Token has expired"}`, w.Body.String())
}

func TestValidate_NegativeMinutesIsExpired(t *testing.T) {
	r := newTestRouter(testSecret, &testClock{t: testNow})

	tok := generateToken(t, r, `{"payload":{},"expiration_minutes":-1}`)

	w := getValidate(r, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Token has expired"}`, w.Body.String())
}

func TestValidate_Invalid(t *testing.T) {
	c := &testClock{t: testNow}
	r := newTestRouter(testSecret, c)
	foreign := generateToken(t, newTestRouter("some-other-secret", c), `{"payload":{"user_id":1},"expiration_minutes":10}`)
	audString := generateToken(t, r, `{"payload":{"aud":"billing"},"expiration_minutes":10}`)
	audList := generateToken(t, r, `{"payload":{"aud":["a","b"]},"expiration_minutes":10}`)

	for _, tok := range []string{"abc.def.ghi", "not-a-token", "", foreign, audString, audList} {
		w := getValidate(r, tok)
		assert.Equal(t, http.StatusBadRequest, w.Code, "token %q", tok)
		assert.JSONEq(t, `{"detail":"Invalid token"}`, w.Body.String())
	}
}

func TestValidate_EmptyAudience(t *testing.T) {
	r := newTestRouter(testSecret, &testClock{t: testNow})

	tok := generateToken(t, r, `{"payload":{"aud":""},"expiration_minutes":10}`)

	w := getValidate(r, tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"payload":{"aud":"","exp":1768479000}}`, w.Body.String())
}

func TestValidate_MissingToken(t *testing.T) {
	r := newTestRouter(testSecret, &testClock{t: testNow})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jwt/validate", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"detail":[{"loc":["query","token"],"msg":"field required","type":"value_error.missing"}]}`, w.Body.String())
}

func TestGenerate_MissingSecret(t *testing.T) {
	r := newTestRouter("", &testClock{t: testNow})

	w := postGenerate(r, `{"payload":{"user_id":1},"expiration_minutes":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Error al generar el token JWT"}`, w.Body.String())
}

func TestGenerate_FailureReportedToDiscord(t *testing.T) {
	d := &fakeDiscord{errs: make(chan sentError, 1)}
	r := newTestRouterWithDiscord("", &testClock{t: testNow}, d)

	w := postGenerate(r, `{"payload":{"user_id":1},"expiration_minutes":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	select {
	case got := <-d.errs:
		assert.Equal(t, reportGenerateTitle, got.title)
		assert.Equal(t, msgGenerateFailed, got.description)
		assert.ErrorIs(t, got.err, token.ErrGenerateFailed)
	case <-time.After(2 * time.Second):
		t.Fatal("generate failure was not reported")
	}
}

func TestGenerate_BadBody(t *testing.T) {
	r := newTestRouter(testSecret, &testClock{t: testNow})

	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "empty body",
			body:     "",
			wantBody: `{"detail":[{"loc":["body"],"msg":"field required","type":"value_error.missing"}]}`,
		},
		{
			name:     "malformed json",
			body:     `{"payload":`,
			wantBody: `{"detail":[{"loc":["body"],"msg":"invalid JSON body","type":"value_error.jsondecode"}]}`,
		},
		{
			name: "both fields missing",
			body: `{}`,
			wantBody: `{"detail":[
				{"loc":["body","payload"],"msg":"field required","type":"value_error.missing"},
				{"loc":["body","expiration_minutes"],"msg":"field required","type":"value_error.missing"}]}`,
		},
		{
			name:     "payload not an object",
			body:     `{"payload":[1],"expiration_minutes":10}`,
			wantBody: `{"detail":[{"loc":["body","payload"],"msg":"value is not a valid dict","type":"type_error.dict"}]}`,
		},
		{
			name:     "null payload",
			body:     `{"payload":null,"expiration_minutes":10}`,
			wantBody: `{"detail":[{"loc":["body","payload"],"msg":"value is not a valid dict","type":"type_error.dict"}]}`,
		},
		{
			name:     "fractional minutes",
			body:     `{"payload":{},"expiration_minutes":1.5}`,
			wantBody: `{"detail":[{"loc":["body","expiration_minutes"],"msg":"value is not a valid integer","type":"type_error.integer"}]}`,
		},
		{
			name:     "boolean minutes",
			body:     `{"payload":{},"expiration_minutes":true}`,
			wantBody: `{"detail":[{"loc":["body","expiration_minutes"],"msg":"value is not a valid integer","type":"type_error.integer"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postGenerate(r, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
