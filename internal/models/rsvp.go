package models

import "time"

// RSVP is one attendee registration row in the external store.
// ID and CreatedAt are assigned by the store at insertion.
type RSVP struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Partner   bool      `json:"partner"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
