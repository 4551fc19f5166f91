package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type ProviderParams struct {
	Name   string
	TypeID uuid.UUID
	Email  string
	Phone  string
	Active bool
}

func (s *Service) CreateProvider(ctx context.Context, params ProviderParams) (entity.Provider, error) {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Provider{}, fmt.Errorf("get user from context: %w", err)
	}

	if err := ValidateProviderParams(params); err != nil {
		return entity.Provider{}, err
	}

	if err := s.checkTaxonomy(ctx, params.TypeID, entity.TaxonomyKindProvider); err != nil {
		return entity.Provider{}, err
	}

	now := time.Now()

	provider := entity.Provider{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      params.Name,
		TypeID:    params.TypeID,
		Email:     params.Email,
		Phone:     params.Phone,
		Active:    params.Active,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateProvider(ctx, provider); err != nil {
		return entity.Provider{}, fmt.Errorf("create provider: %w", err)
	}

	return provider, nil
}

func (s *Service) ProviderByID(ctx context.Context, id uuid.UUID) (entity.Provider, error) {
	provider, err := s.repo.ProviderByID(ctx, id)
	if err != nil {
		return entity.Provider{}, fmt.Errorf("find provider %s: %w", id, err)
	}

	return provider, nil
}

func (s *Service) Providers(ctx context.Context) ([]entity.Provider, error) {
	providers, err := s.repo.Providers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}

	return providers, nil
}

func (s *Service) UpdateProvider(ctx context.Context, id uuid.UUID, params ProviderParams) (entity.Provider, error) {
	if err := ValidateProviderParams(params); err != nil {
		return entity.Provider{}, err
	}

	provider, err := s.repo.ProviderByID(ctx, id)
	if err != nil {
		return entity.Provider{}, fmt.Errorf("find provider %s: %w", id, err)
	}

	if provider.TypeID != params.TypeID {
		if err := s.checkTaxonomy(ctx, params.TypeID, entity.TaxonomyKindProvider); err != nil {
			return entity.Provider{}, err
		}
	}

	provider.Name = params.Name
	provider.TypeID = params.TypeID
	provider.Email = params.Email
	provider.Phone = params.Phone
	provider.Active = params.Active
	provider.UpdatedAt = time.Now()

	if err := s.repo.UpdateProvider(ctx, provider); err != nil {
		return entity.Provider{}, fmt.Errorf("update provider %s: %w", id, err)
	}

	return provider, nil
}

func (s *Service) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProvider(ctx, id); err != nil {
		return fmt.Errorf("delete provider %s: %w", id, err)
	}

	return nil
}
