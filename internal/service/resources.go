package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type ResourceParams struct {
	Name       string
	TypeID     uuid.UUID
	Quantity   int
	UnitCost   decimal.Decimal
	ProviderID uuid.NullUUID
	Status     entity.ResourceStatus
}

func (s *Service) CreateResource(ctx context.Context, params ResourceParams) (entity.Resource, error) {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Resource{}, fmt.Errorf("get user from context: %w", err)
	}

	if params.Status == "" {
		params.Status = entity.ResourceStatusAvailable
	}

	if err := ValidateResourceParams(params); err != nil {
		return entity.Resource{}, err
	}

	if err := s.checkTaxonomy(ctx, params.TypeID, entity.TaxonomyKindResource); err != nil {
		return entity.Resource{}, err
	}

	if params.ProviderID.Valid {
		if _, err := s.repo.ProviderByID(ctx, params.ProviderID.UUID); err != nil {
			return entity.Resource{}, fmt.Errorf("find provider %s: %w", params.ProviderID.UUID, err)
		}
	}

	now := time.Now()

	resource := entity.Resource{
		ID:         uuid.Must(uuid.NewV4()),
		Name:       params.Name,
		TypeID:     params.TypeID,
		Quantity:   params.Quantity,
		UnitCost:   params.UnitCost,
		ProviderID: params.ProviderID,
		Status:     params.Status,
		CreatedBy:  actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.CreateResource(ctx, resource); err != nil {
		return entity.Resource{}, fmt.Errorf("create resource: %w", err)
	}

	return resource, nil
}

func (s *Service) ResourceByID(ctx context.Context, id uuid.UUID) (entity.Resource, error) {
	resource, err := s.repo.ResourceByID(ctx, id)
	if err != nil {
		return entity.Resource{}, fmt.Errorf("find resource %s: %w", id, err)
	}

	return resource, nil
}

func (s *Service) Resources(ctx context.Context) ([]entity.Resource, error) {
	resources, err := s.repo.Resources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	return resources, nil
}

func (s *Service) UpdateResource(ctx context.Context, id uuid.UUID, params ResourceParams) (entity.Resource, error) {
	if err := ValidateResourceParams(params); err != nil {
		return entity.Resource{}, err
	}

	resource, err := s.repo.ResourceByID(ctx, id)
	if err != nil {
		return entity.Resource{}, fmt.Errorf("find resource %s: %w", id, err)
	}

	if resource.TypeID != params.TypeID {
		if err := s.checkTaxonomy(ctx, params.TypeID, entity.TaxonomyKindResource); err != nil {
			return entity.Resource{}, err
		}
	}

	resource.Name = params.Name
	resource.TypeID = params.TypeID
	resource.Quantity = params.Quantity
	resource.UnitCost = params.UnitCost
	resource.ProviderID = params.ProviderID
	resource.Status = params.Status
	resource.UpdatedAt = time.Now()

	if err := s.repo.UpdateResource(ctx, resource); err != nil {
		return entity.Resource{}, fmt.Errorf("update resource %s: %w", id, err)
	}

	return resource, nil
}

func (s *Service) DeleteResource(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteResource(ctx, id); err != nil {
		return fmt.Errorf("delete resource %s: %w", id, err)
	}

	return nil
}
