package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// AccessDenied describes a rejected request for the audit stream.
type AccessDenied struct {
	Kind     string    `json:"kind"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	Path     string    `json:"path"`
	At       time.Time `json:"at"`
}
