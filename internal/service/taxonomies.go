package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type TaxonomyParams struct {
	Kind        entity.TaxonomyKind
	Name        string
	Description string
	Active      bool
}

func (s *Service) CreateTaxonomy(ctx context.Context, params TaxonomyParams) (entity.Taxonomy, error) {
	if err := ValidateTaxonomyParams(params); err != nil {
		return entity.Taxonomy{}, err
	}

	now := time.Now()

	taxonomy := entity.Taxonomy{
		ID:          uuid.Must(uuid.NewV4()),
		Kind:        params.Kind,
		Name:        params.Name,
		Description: params.Description,
		Active:      params.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateTaxonomy(ctx, taxonomy); err != nil {
		return entity.Taxonomy{}, fmt.Errorf("create %s type: %w", params.Kind, err)
	}

	return taxonomy, nil
}

func (s *Service) TaxonomyByID(ctx context.Context, id uuid.UUID) (entity.Taxonomy, error) {
	taxonomy, err := s.repo.TaxonomyByID(ctx, id)
	if err != nil {
		return entity.Taxonomy{}, fmt.Errorf("find type %s: %w", id, err)
	}

	return taxonomy, nil
}

func (s *Service) Taxonomies(ctx context.Context, kind entity.TaxonomyKind) ([]entity.Taxonomy, error) {
	if kind != "" && !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown taxonomy kind %q", entity.ErrIncorrectRequestBody, kind)
	}

	taxonomies, err := s.repo.Taxonomies(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list taxonomies: %w", err)
	}

	return taxonomies, nil
}

func (s *Service) UpdateTaxonomy(ctx context.Context, id uuid.UUID, params TaxonomyParams) (entity.Taxonomy, error) {
	if err := ValidateTaxonomyParams(params); err != nil {
		return entity.Taxonomy{}, err
	}

	taxonomy, err := s.repo.TaxonomyByID(ctx, id)
	if err != nil {
		return entity.Taxonomy{}, fmt.Errorf("find type %s: %w", id, err)
	}

	// Moving a type between catalogs would orphan its references.
	if taxonomy.Kind != params.Kind {
		return entity.Taxonomy{}, fmt.Errorf("cannot change kind of type %s: %w", id, entity.ErrConflict)
	}

	taxonomy.Name = params.Name
	taxonomy.Description = params.Description
	taxonomy.Active = params.Active
	taxonomy.UpdatedAt = time.Now()

	if err := s.repo.UpdateTaxonomy(ctx, taxonomy); err != nil {
		return entity.Taxonomy{}, fmt.Errorf("update type %s: %w", id, err)
	}

	return taxonomy, nil
}

func (s *Service) DeleteTaxonomy(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTaxonomy(ctx, id); err != nil {
		return fmt.Errorf("delete type %s: %w", id, err)
	}

	return nil
}
