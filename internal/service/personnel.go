package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type PersonnelParams struct {
	FullName string
	TypeID   uuid.UUID
	Email    string
	Phone    string
	EventID  uuid.NullUUID
	Active   bool
}

func (s *Service) CreatePersonnel(ctx context.Context, params PersonnelParams) (entity.Personnel, error) {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Personnel{}, fmt.Errorf("get user from context: %w", err)
	}

	if err := ValidatePersonnelParams(params); err != nil {
		return entity.Personnel{}, err
	}

	if err := s.checkTaxonomy(ctx, params.TypeID, entity.TaxonomyKindPersonnel); err != nil {
		return entity.Personnel{}, err
	}

	if params.EventID.Valid {
		if _, err := s.repo.EventByID(ctx, params.EventID.UUID); err != nil {
			return entity.Personnel{}, fmt.Errorf("find event %s: %w", params.EventID.UUID, err)
		}
	}

	now := time.Now()

	person := entity.Personnel{
		ID:        uuid.Must(uuid.NewV4()),
		FullName:  params.FullName,
		TypeID:    params.TypeID,
		Email:     params.Email,
		Phone:     params.Phone,
		EventID:   params.EventID,
		Active:    params.Active,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreatePersonnel(ctx, person); err != nil {
		return entity.Personnel{}, fmt.Errorf("create personnel: %w", err)
	}

	return person, nil
}

func (s *Service) PersonnelByID(ctx context.Context, id uuid.UUID) (entity.Personnel, error) {
	person, err := s.repo.PersonnelByID(ctx, id)
	if err != nil {
		return entity.Personnel{}, fmt.Errorf("find personnel %s: %w", id, err)
	}

	return person, nil
}

func (s *Service) Personnel(ctx context.Context) ([]entity.Personnel, error) {
	personnel, err := s.repo.Personnel(ctx)
	if err != nil {
		return nil, fmt.Errorf("list personnel: %w", err)
	}

	return personnel, nil
}

func (s *Service) UpdatePersonnel(ctx context.Context, id uuid.UUID, params PersonnelParams) (entity.Personnel, error) {
	if err := ValidatePersonnelParams(params); err != nil {
		return entity.Personnel{}, err
	}

	person, err := s.repo.PersonnelByID(ctx, id)
	if err != nil {
		return entity.Personnel{}, fmt.Errorf("find personnel %s: %w", id, err)
	}

	if person.TypeID != params.TypeID {
		if err := s.checkTaxonomy(ctx, params.TypeID, entity.TaxonomyKindPersonnel); err != nil {
			return entity.Personnel{}, err
		}
	}

	if params.EventID.Valid && params.EventID != person.EventID {
		if _, err := s.repo.EventByID(ctx, params.EventID.UUID); err != nil {
			return entity.Personnel{}, fmt.Errorf("find event %s: %w", params.EventID.UUID, err)
		}
	}

	person.FullName = params.FullName
	person.TypeID = params.TypeID
	person.Email = params.Email
	person.Phone = params.Phone
	person.EventID = params.EventID
	person.Active = params.Active
	person.UpdatedAt = time.Now()

	if err := s.repo.UpdatePersonnel(ctx, person); err != nil {
		return entity.Personnel{}, fmt.Errorf("update personnel %s: %w", id, err)
	}

	return person, nil
}

func (s *Service) DeletePersonnel(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeletePersonnel(ctx, id); err != nil {
		return fmt.Errorf("delete personnel %s: %w", id, err)
	}

	return nil
}
