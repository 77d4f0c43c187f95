package rsvps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/party-rsvp/backend/internal/models"
	"github.com/party-rsvp/backend/internal/store"
	"github.com/party-rsvp/backend/pkg/response"
)

const table = "rsvps"

// Name length bounds, in bytes, checked before any store access.
const (
	minNameLen = 2
	maxNameLen = 60
)

// looseBool decodes to true only for the JSON literal true; any other value
// or type is false. Submissions with a junk partner field still go through.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	*b = looseBool(bytes.Equal(bytes.TrimSpace(data), []byte("true")))
	return nil
}

// SubmitRequest is the body for POST /registrations.
type SubmitRequest struct {
	Name    string    `json:"name"`
	Partner looseBool `json:"partner"`
}

// DeleteRequest is the body for DELETE /registrations.
type DeleteRequest struct {
	ID string `json:"id"`
}

// Handler handles RSVP submission, listing, deletion and counting.
type Handler struct {
	store  *store.Client
	window time.Duration
	logger *zap.Logger
}

// NewHandler creates an RSVP handler. window is the per-IP throttling window.
func NewHandler(st *store.Client, window time.Duration, logger *zap.Logger) *Handler {
	return &Handler{store: st, window: window, logger: logger}
}

// Create handles POST /registrations: validate the name, throttle per IP,
// then insert and relay the store's status and body verbatim.
func (h *Handler) Create(c *gin.Context) {
	var req SubmitRequest
	_ = c.ShouldBindJSON(&req)

	if len(req.Name) < minNameLen || len(req.Name) > maxNameLen {
		response.Fail(c, http.StatusBadRequest, response.KindInvalidName)
		return
	}

	ip := clientIP(c.Request)
	if ip != "" && h.throttled(c.Request.Context(), ip) {
		response.FailMsg(c, http.StatusTooManyRequests, response.KindTooManyPerIP,
			"Too many registrations from this IP.")
		return
	}

	row := map[string]any{"name": req.Name, "partner": bool(req.Partner)}
	if ip != "" {
		row["ip"] = ip
	}
	res, err := h.store.Insert(c.Request.Context(), table, row)
	if err != nil {
		h.storeError(c, "insert rsvp", err)
		return
	}
	c.Data(res.Status, "application/json", res.Body)
}

// List handles GET /registrations (admin only), ascending by creation time.
func (h *Handler) List(c *gin.Context) {
	res, err := h.store.Select(c.Request.Context(), table, "select=*&order=created_at.asc")
	if err != nil {
		h.storeError(c, "list rsvps", err)
		return
	}
	c.Data(res.Status, "application/json", res.Body)
}

// Delete handles DELETE /registrations (admin only) by id.
func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	_ = c.ShouldBindJSON(&req)

	if req.ID == "" {
		response.Fail(c, http.StatusBadRequest, response.KindMissingID)
		return
	}
	res, err := h.store.Delete(c.Request.Context(), table, "id=eq."+url.QueryEscape(req.ID))
	if err != nil {
		h.storeError(c, "delete rsvp", err)
		return
	}
	if res.OK() {
		c.String(http.StatusOK, "ok")
		return
	}
	c.Data(res.Status, "application/json", res.Body)
}

// Count handles GET /count. The running total must never be served from a
// cache, success or failure alike.
func (h *Handler) Count(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0, s-maxage=0")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	n, err := h.store.Count(c.Request.Context(), table)
	if err != nil {
		h.storeError(c, "count rsvps", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// throttled reports whether ip already registered inside the window. The
// check is advisory: any store failure counts as "not throttled" so a store
// outage never blocks submissions (the insert itself still fails closed).
func (h *Handler) throttled(ctx context.Context, ip string) bool {
	since := time.Now().Add(-h.window).UTC().Format(time.RFC3339)
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")
	q.Set("ip", "eq."+ip)
	q.Set("created_at", "gte."+since)

	res, err := h.store.Select(ctx, table, q.Encode())
	if err != nil {
		if !errors.Is(err, store.ErrNotConfigured) {
			h.logger.Warn("throttle check failed", zap.String("ip", ip), zap.Error(err))
		}
		return false
	}
	if !res.OK() {
		return false
	}
	var existing []models.RSVP
	if err := json.Unmarshal(res.Body, &existing); err != nil {
		return false
	}
	return len(existing) > 0
}

func (h *Handler) storeError(c *gin.Context, op string, err error) {
	h.logger.Error(op, zap.Error(err))
	if errors.Is(err, store.ErrNotConfigured) {
		response.Internal(c, "store not configured")
		return
	}
	response.Internal(c, "store unavailable")
}
