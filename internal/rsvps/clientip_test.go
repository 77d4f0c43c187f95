package rsvps

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded first entry wins", "1.2.3.4, 5.6.7.8", "9.9.9.9", "10.0.0.1:5000", "1.2.3.4"},
		{"forwarded single entry", "1.2.3.4", "", "10.0.0.1:5000", "1.2.3.4"},
		{"forwarded entries are trimmed", "  1.2.3.4 , 5.6.7.8", "", "10.0.0.1:5000", "1.2.3.4"},
		{"real ip when no forwarded", "", " 9.9.9.9 ", "10.0.0.1:5000", "9.9.9.9"},
		{"peer address fallback", "", "", "10.0.0.1:5000", "10.0.0.1"},
		{"peer address without port", "", "", "10.0.0.1", "10.0.0.1"},
		{"blank forwarded falls through", " , ", "", "10.0.0.1:5000", "10.0.0.1"},
		{"nothing known", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/registrations", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-Ip", tt.realIP)
			}
			assert.Equal(t, tt.want, clientIP(r))
		})
	}
}
