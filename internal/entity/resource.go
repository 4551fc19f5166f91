package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ResourceStatus string

const (
	ResourceStatusAvailable ResourceStatus = "available"
	ResourceStatusReserved  ResourceStatus = "reserved"
	ResourceStatusRetired   ResourceStatus = "retired"
)

func (s ResourceStatus) IsValid() bool {
	switch s {
	case ResourceStatusAvailable, ResourceStatusReserved, ResourceStatusRetired:
		return true
	default:
		return false
	}
}

type Resource struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	TypeID     uuid.UUID       `json:"typeId"`
	Quantity   int             `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unitCost"`
	ProviderID uuid.NullUUID   `json:"providerId"`
	Status     ResourceStatus  `json:"status"`
	CreatedBy  uuid.UUID       `json:"createdBy"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
