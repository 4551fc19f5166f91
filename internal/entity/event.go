package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusPlanned   EventStatus = "planned"
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusClosed    EventStatus = "closed"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPlanned, EventStatusConfirmed, EventStatusCancelled, EventStatusClosed:
		return true
	default:
		return false
	}
}

type Event struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TypeID      uuid.UUID       `json:"typeId"`
	Venue       string          `json:"venue"`
	StartsAt    time.Time       `json:"startsAt"`
	EndsAt      time.Time       `json:"endsAt"`
	Status      EventStatus     `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	CreatedBy   uuid.UUID       `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type EventsFilter struct {
	Page    uint64
	Limit   uint64
	Status  EventStatus
	SortBy  SortBy
	OrderBy OrderBy
}
