package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusSigned    ContractStatus = "signed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusDraft, ContractStatusSigned, ContractStatusCancelled:
		return true
	default:
		return false
	}
}

type Contract struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	EventID    uuid.UUID       `json:"eventId"`
	ProviderID uuid.UUID       `json:"providerId"`
	Amount     decimal.Decimal `json:"amount"`
	Status     ContractStatus  `json:"status"`
	SignedAt   *time.Time      `json:"signedAt"`
	CreatedBy  uuid.UUID       `json:"createdBy"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type ContractsFilter struct {
	Page    uint64
	Limit   uint64
	EventID uuid.UUID
	Status  ContractStatus
	SortBy  SortBy
	OrderBy OrderBy
}
