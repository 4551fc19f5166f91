package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

type ContractParams struct {
	Number     string
	EventID    uuid.UUID
	ProviderID uuid.UUID
	Amount     decimal.Decimal
	Status     entity.ContractStatus
}

func (s *Service) CreateContract(ctx context.Context, params ContractParams) (entity.Contract, error) {
	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Contract{}, fmt.Errorf("get user from context: %w", err)
	}

	if params.Status == "" {
		params.Status = entity.ContractStatusDraft
	}

	if err := ValidateContractParams(params); err != nil {
		return entity.Contract{}, err
	}

	if _, err := s.repo.EventByID(ctx, params.EventID); err != nil {
		return entity.Contract{}, fmt.Errorf("find event %s: %w", params.EventID, err)
	}

	provider, err := s.repo.ProviderByID(ctx, params.ProviderID)
	if err != nil {
		return entity.Contract{}, fmt.Errorf("find provider %s: %w", params.ProviderID, err)
	}

	if !provider.Active {
		return entity.Contract{}, fmt.Errorf("provider %s is inactive: %w", provider.ID, entity.ErrConflict)
	}

	now := time.Now()

	contract := entity.Contract{
		ID:         uuid.Must(uuid.NewV4()),
		Number:     params.Number,
		EventID:    params.EventID,
		ProviderID: params.ProviderID,
		Amount:     params.Amount,
		Status:     params.Status,
		CreatedBy:  actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if contract.Status == entity.ContractStatusSigned {
		contract.SignedAt = &now
	}

	if err := s.repo.CreateContract(ctx, contract); err != nil {
		return entity.Contract{}, fmt.Errorf("create contract: %w", err)
	}

	return contract, nil
}

func (s *Service) ContractByID(ctx context.Context, id uuid.UUID) (entity.Contract, error) {
	contract, err := s.repo.ContractByID(ctx, id)
	if err != nil {
		return entity.Contract{}, fmt.Errorf("find contract %s: %w", id, err)
	}

	return contract, nil
}

func (s *Service) Contracts(ctx context.Context, filter entity.ContractsFilter) ([]entity.Contract, int, error) {
	contracts, count, err := s.repo.Contracts(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list contracts: %w", err)
	}

	return contracts, count, nil
}

func (s *Service) UpdateContract(ctx context.Context, id uuid.UUID, params ContractParams) (entity.Contract, error) {
	if err := ValidateContractParams(params); err != nil {
		return entity.Contract{}, err
	}

	contract, err := s.repo.ContractByID(ctx, id)
	if err != nil {
		return entity.Contract{}, fmt.Errorf("find contract %s: %w", id, err)
	}

	// A signed contract is immutable apart from cancellation.
	if contract.Status == entity.ContractStatusSigned && params.Status != entity.ContractStatusCancelled {
		return entity.Contract{}, fmt.Errorf("contract %s is signed: %w", id, entity.ErrConflict)
	}

	now := time.Now()

	contract.Number = params.Number
	contract.Amount = params.Amount

	if params.Status == entity.ContractStatusSigned && contract.SignedAt == nil {
		contract.SignedAt = &now
	}

	contract.Status = params.Status
	contract.UpdatedAt = now

	if err := s.repo.UpdateContract(ctx, contract); err != nil {
		return entity.Contract{}, fmt.Errorf("update contract %s: %w", id, err)
	}

	return contract, nil
}

func (s *Service) DeleteContract(ctx context.Context, id uuid.UUID) error {
	contract, err := s.repo.ContractByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find contract %s: %w", id, err)
	}

	if contract.Status == entity.ContractStatusSigned {
		return fmt.Errorf("contract %s is signed: %w", id, entity.ErrConflict)
	}

	if err := s.repo.DeleteContract(ctx, id); err != nil {
		return fmt.Errorf("delete contract %s: %w", id, err)
	}

	return nil
}
