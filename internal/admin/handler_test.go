package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(pin string) (*gin.Engine, *SessionService) {
	gin.SetMode(gin.TestMode)
	sessions := NewSessionService("test-secret", 6, zap.NewNop())
	h := NewHandler(pin, sessions, zap.NewNop())

	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	return r, sessions
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("admin cookie not set")
	return nil
}

func TestLoginIssuesSessionCookie(t *testing.T) {
	router, sessions := newTestHandler("7391")

	w := postJSON(router, "/login", `{"pin":"7391"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	c := adminCookie(t, w)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 6*60*60, c.MaxAge)
	assert.NoError(t, sessions.Validate(c.Value))
}

func TestLoginRejectsWrongPIN(t *testing.T) {
	router, _ := newTestHandler("7391")

	for name, body := range map[string]string{
		"wrong pin":      `{"pin":"0000"}`,
		"empty pin":      `{"pin":""}`,
		"missing pin":    `{}`,
		"empty body":     ``,
		"malformed body": `{"pin": `,
	} {
		t.Run(name, func(t *testing.T) {
			w := postJSON(router, "/login", body)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String())
			assert.Empty(t, w.Result().Cookies(), "no cookie on failed login")
		})
	}
}

func TestLoginDisabledWithoutPIN(t *testing.T) {
	router, _ := newTestHandler("")

	w := postJSON(router, "/login", `{"pin":""}`)
	assert.Equal(t, http.StatusForbidden, w.Code, "an unset pin must not make the empty pin valid")
}

func TestLogoutExpiresCookie(t *testing.T) {
	router, _ := newTestHandler("7391")

	w := postJSON(router, "/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	c := adminCookie(t, w)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge, "cookie must expire immediately")
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
}
