package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type EventParams struct {
	Name        string
	Description string
	TypeID      uuid.UUID
	Venue       string
	StartsAt    time.Time
	EndsAt      time.Time
	Status      entity.EventStatus
	Budget      decimal.Decimal
}

func (s *Service) CreateEvent(ctx context.Context, params EventParams) (entity.Event, error) {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Event{}, fmt.Errorf("get user from context: %w", err)
	}

	if params.Status == "" {
		params.Status = entity.EventStatusPlanned
	}

	if err := ValidateEventParams(params); err != nil {
		return entity.Event{}, err
	}

	if err := s.checkTaxonomy(ctx, params.TypeID, entity.TaxonomyKindEvent); err != nil {
		return entity.Event{}, err
	}

	now := time.Now()

	event := entity.Event{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        params.Name,
		Description: params.Description,
		TypeID:      params.TypeID,
		Venue:       params.Venue,
		StartsAt:    params.StartsAt,
		EndsAt:      params.EndsAt,
		Status:      params.Status,
		Budget:      params.Budget,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return entity.Event{}, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *Service) EventByID(ctx context.Context, id uuid.UUID) (entity.Event, error) {
	event, err := s.repo.EventByID(ctx, id)
	if err != nil {
		return entity.Event{}, fmt.Errorf("find event %s: %w", id, err)
	}

	return event, nil
}

func (s *Service) Events(ctx context.Context, filter entity.EventsFilter) ([]entity.Event, int, error) {
	events, count, err := s.repo.Events(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}

	return events, count, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id uuid.UUID, params EventParams) (entity.Event, error) {
	if err := ValidateEventParams(params); err != nil {
		return entity.Event{}, err
	}

	event, err := s.repo.EventByID(ctx, id)
	if err != nil {
		return entity.Event{}, fmt.Errorf("find event %s: %w", id, err)
	}

	if event.TypeID != params.TypeID {
		if err := s.checkTaxonomy(ctx, params.TypeID, entity.TaxonomyKindEvent); err != nil {
			return entity.Event{}, err
		}
	}

	event.Name = params.Name
	event.Description = params.Description
	event.TypeID = params.TypeID
	event.Venue = params.Venue
	event.StartsAt = params.StartsAt
	event.EndsAt = params.EndsAt
	event.Status = params.Status
	event.Budget = params.Budget
	event.UpdatedAt = time.Now()

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return entity.Event{}, fmt.Errorf("update event %s: %w", id, err)
	}

	return event, nil
}

// DeleteEvent removes an event unless signed contracts still reference
// it; those have to be cancelled first.
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	signed, err := s.repo.CountContractsByEventID(ctx, id, entity.ContractStatusSigned)
	if err != nil {
		return fmt.Errorf("count signed contracts: %w", err)
	}

	if signed > 0 {
		return fmt.Errorf("event %s has %d signed contracts: %w", id, signed, entity.ErrConflict)
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}

	return nil
}

func (s *Service) checkTaxonomy(ctx context.Context, id uuid.UUID, kind entity.TaxonomyKind) error {
	taxonomy, err := s.repo.TaxonomyByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find %s type %s: %w", kind, id, err)
	}

	if taxonomy.Kind != kind || !taxonomy.Active {
		return fmt.Errorf("type %s is not an active %s type: %w", id, kind, entity.ErrIncorrectRequestBody)
	}

	return nil
}
