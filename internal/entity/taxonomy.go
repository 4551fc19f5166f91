package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// TaxonomyKind scopes a type catalog to the entity it classifies. The
// original system kept five near-identical "type" models; they are
// consolidated into one kind-scoped table here.
type TaxonomyKind string

const (
	TaxonomyKindEvent     TaxonomyKind = "event"
	TaxonomyKindContract  TaxonomyKind = "contract"
	TaxonomyKindResource  TaxonomyKind = "resource"
	TaxonomyKindProvider  TaxonomyKind = "provider"
	TaxonomyKindPersonnel TaxonomyKind = "personnel"
)

func (k TaxonomyKind) IsValid() bool {
	switch k {
	case TaxonomyKindEvent, TaxonomyKindContract, TaxonomyKindResource,
		TaxonomyKindProvider, TaxonomyKindPersonnel:
		return true
	default:
		return false
	}
}

type Taxonomy struct {
	ID          uuid.UUID    `json:"id"`
	Kind        TaxonomyKind `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Active      bool         `json:"active"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
