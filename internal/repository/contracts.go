package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

const contractColumns = "id, number, event_id, provider_id, amount, status, signed_at, created_by, created_at, updated_at"

func (r *Repository) CreateContract(ctx context.Context, contract entity.Contract) error {
	sqlQuery :=
		`INSERT INTO contracts
			(id, number, event_id, provider_id, amount, status, signed_at, created_by, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, sqlQuery,
		contract.ID,
		contract.Number,
		contract.EventID,
		contract.ProviderID,
		contract.Amount,
		contract.Status,
		contract.SignedAt,
		contract.CreatedBy,
		contract.CreatedAt,
		contract.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}

	return nil
}

func (r *Repository) ContractByID(ctx context.Context, id uuid.UUID) (entity.Contract, error) {
	sqlQuery := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`

	var contract entity.Contract

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&contract.ID,
		&contract.Number,
		&contract.EventID,
		&contract.ProviderID,
		&contract.Amount,
		&contract.Status,
		&contract.SignedAt,
		&contract.CreatedBy,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Contract{}, entity.ErrNotFound
		}

		return entity.Contract{}, err
	}

	return contract, nil
}

func (r *Repository) Contracts(ctx context.Context, filter entity.ContractsFilter) ([]entity.Contract, int, error) {
	countStmt := sq.Select("count(*)").From("contracts").PlaceholderFormat(sq.Dollar)
	countStmt = whereContractsFilter(countStmt, filter)

	sqlQuery, args, err := countStmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	stmt := sq.Select(
		"id",
		"number",
		"event_id",
		"provider_id",
		"amount",
		"status",
		"signed_at",
		"created_by",
		"created_at",
		"updated_at",
	).From("contracts").PlaceholderFormat(sq.Dollar)

	stmt = whereContractsFilter(stmt, filter)
	stmt = stmt.Limit(filter.Limit)
	stmt = stmt.Offset((filter.Page - 1) * filter.Limit)
	stmt = stmt.OrderBy(fmt.Sprintf("%s %s", filter.SortBy, filter.OrderBy))

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	contracts := make([]entity.Contract, 0, filter.Limit)

	for rows.Next() {
		var contract entity.Contract

		err = rows.Scan(
			&contract.ID,
			&contract.Number,
			&contract.EventID,
			&contract.ProviderID,
			&contract.Amount,
			&contract.Status,
			&contract.SignedAt,
			&contract.CreatedBy,
			&contract.CreatedAt,
			&contract.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		contracts = append(contracts, contract)
	}

	return contracts, count, nil
}

func whereContractsFilter(stmt sq.SelectBuilder, filter entity.ContractsFilter) sq.SelectBuilder {
	if !filter.EventID.IsNil() {
		stmt = stmt.Where(sq.Eq{"event_id": filter.EventID})
	}

	if filter.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": filter.Status})
	}

	return stmt
}

func (r *Repository) UpdateContract(ctx context.Context, contract entity.Contract) error {
	sqlQuery :=
		`UPDATE contracts
		SET number = $1, event_id = $2, provider_id = $3, amount = $4, status = $5,
			signed_at = $6, updated_at = $7
		WHERE id = $8`

	tag, err := r.db.Exec(ctx, sqlQuery,
		contract.Number,
		contract.EventID,
		contract.ProviderID,
		contract.Amount,
		contract.Status,
		contract.SignedAt,
		contract.UpdatedAt,
		contract.ID,
	)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteContract(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CountContractsByEventID(ctx context.Context, eventID uuid.UUID, status entity.ContractStatus) (int, error) {
	sqlQuery := `SELECT count(*) FROM contracts WHERE event_id = $1 AND status = $2`

	var count int

	err := r.db.QueryRow(ctx, sqlQuery, eventID, status).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
