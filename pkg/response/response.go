package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind identifies a failure category in API error bodies.
type Kind string

const (
	KindInvalidName      Kind = "invalid_name"
	KindMissingID        Kind = "missing_id"
	KindTooManyPerIP     Kind = "too_many_per_ip"
	KindForbidden        Kind = "forbidden"
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindServerError      Kind = "server_error"
)

// Body is the standard API error body. Every failed request carries a
// machine-readable kind and, where useful, a human-readable message.
type Body struct {
	Error   Kind   `json:"error"`
	Message string `json:"message,omitempty"`
}

// Fail sends an error body with the given status and kind.
func Fail(c *gin.Context, status int, kind Kind) {
	c.JSON(status, Body{Error: kind})
}

// FailMsg sends an error body with a message.
func FailMsg(c *gin.Context, status int, kind Kind, msg string) {
	c.JSON(status, Body{Error: kind, Message: msg})
}

// Forbidden sends 403. No detail about why is leaked.
func Forbidden(c *gin.Context) {
	Fail(c, http.StatusForbidden, KindForbidden)
}

// MethodNotAllowed sends 405.
func MethodNotAllowed(c *gin.Context) {
	Fail(c, http.StatusMethodNotAllowed, KindMethodNotAllowed)
}

// Internal sends a generic 500.
func Internal(c *gin.Context, msg string) {
	FailMsg(c, http.StatusInternalServerError, KindServerError, msg)
}
