package entity

import "time"

// Doctor represents a registered doctor.
type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Specialization string    `json:"specialization"`
	Contact        string    `json:"contact,omitempty"`
	Email          string    `json:"email,omitempty"`
	RegisteredAt   time.Time `json:"registered_at"`
}
