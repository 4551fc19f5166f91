package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

const resourceColumns = "id, name, type_id, quantity, unit_cost, provider_id, status, created_by, created_at, updated_at"

func (r *Repository) CreateResource(ctx context.Context, resource entity.Resource) error {
	sqlQuery :=
		`INSERT INTO resources
			(id, name, type_id, quantity, unit_cost, provider_id, status, created_by, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, sqlQuery,
		resource.ID,
		resource.Name,
		resource.TypeID,
		resource.Quantity,
		resource.UnitCost,
		resource.ProviderID,
		resource.Status,
		resource.CreatedBy,
		resource.CreatedAt,
		resource.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}

	return nil
}

func (r *Repository) ResourceByID(ctx context.Context, id uuid.UUID) (entity.Resource, error) {
	sqlQuery := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	var resource entity.Resource

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&resource.ID,
		&resource.Name,
		&resource.TypeID,
		&resource.Quantity,
		&resource.UnitCost,
		&resource.ProviderID,
		&resource.Status,
		&resource.CreatedBy,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Resource{}, entity.ErrNotFound
		}

		return entity.Resource{}, err
	}

	return resource, nil
}

func (r *Repository) Resources(ctx context.Context) ([]entity.Resource, error) {
	sqlQuery := `SELECT ` + resourceColumns + ` FROM resources ORDER BY name ASC`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	resources := make([]entity.Resource, 0)

	for rows.Next() {
		var resource entity.Resource

		err = rows.Scan(
			&resource.ID,
			&resource.Name,
			&resource.TypeID,
			&resource.Quantity,
			&resource.UnitCost,
			&resource.ProviderID,
			&resource.Status,
			&resource.CreatedBy,
			&resource.CreatedAt,
			&resource.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resources = append(resources, resource)
	}

	return resources, nil
}

func (r *Repository) UpdateResource(ctx context.Context, resource entity.Resource) error {
	sqlQuery :=
		`UPDATE resources
		SET name = $1, type_id = $2, quantity = $3, unit_cost = $4, provider_id = $5,
			status = $6, updated_at = $7
		WHERE id = $8`

	tag, err := r.db.Exec(ctx, sqlQuery,
		resource.Name,
		resource.TypeID,
		resource.Quantity,
		resource.UnitCost,
		resource.ProviderID,
		resource.Status,
		resource.UpdatedAt,
		resource.ID,
	)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteResource(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
