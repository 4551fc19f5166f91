package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Personnel struct {
	ID        uuid.UUID     `json:"id"`
	FullName  string        `json:"fullName"`
	TypeID    uuid.UUID     `json:"typeId"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	EventID   uuid.NullUUID `json:"eventId"`
	Active    bool          `json:"active"`
	CreatedBy uuid.UUID     `json:"createdBy"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
