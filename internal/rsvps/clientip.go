package rsvps

import (
	"net"
	"net/http"
	"strings"
)

// clientIP resolves the submitting client's best-effort source address:
// first X-Forwarded-For entry, then X-Real-Ip, then the transport peer.
// Returns "" when nothing usable is present.
func clientIP(r *http.Request) string {
	if xfwd := r.Header.Get("X-Forwarded-For"); xfwd != "" {
		first, _, _ := strings.Cut(xfwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-Ip")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
