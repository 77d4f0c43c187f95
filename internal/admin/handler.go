package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/party-rsvp/backend/pkg/response"
)

// CookieName is the admin session cookie.
const CookieName = "admin"

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	PIN string `json:"pin"`
}

// Handler handles admin login and logout.
type Handler struct {
	pin      string
	sessions *SessionService
	logger   *zap.Logger
}

// NewHandler creates an admin handler. An empty pin keeps login permanently
// disabled; there is no built-in default.
func NewHandler(pin string, sessions *SessionService, logger *zap.Logger) *Handler {
	if pin == "" {
		logger.Warn("ADMIN_PIN not set, admin login disabled")
	}
	return &Handler{pin: pin, sessions: sessions, logger: logger}
}

// Login handles POST /login. A malformed body counts as an empty pin.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	_ = c.ShouldBindJSON(&req)

	if h.pin == "" || subtle.ConstantTimeCompare([]byte(req.PIN), []byte(h.pin)) != 1 {
		response.Forbidden(c)
		return
	}

	token, err := h.sessions.Issue()
	if err != nil {
		h.logger.Error("issue session", zap.Error(err))
		response.Internal(c, "session error")
		return
	}
	h.setCookie(c, token, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout handles POST /logout, overwriting the cookie with an expired one.
func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.String(http.StatusOK, "ok")
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", true, true)
}
