package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

const providerColumns = "id, name, type_id, email, phone, active, created_by, created_at, updated_at"

func (r *Repository) CreateProvider(ctx context.Context, provider entity.Provider) error {
	sqlQuery :=
		`INSERT INTO providers
			(id, name, type_id, email, phone, active, created_by, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, sqlQuery,
		provider.ID,
		provider.Name,
		provider.TypeID,
		provider.Email,
		provider.Phone,
		provider.Active,
		provider.CreatedBy,
		provider.CreatedAt,
		provider.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}

	return nil
}

func (r *Repository) ProviderByID(ctx context.Context, id uuid.UUID) (entity.Provider, error) {
	sqlQuery := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`

	var provider entity.Provider

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&provider.ID,
		&provider.Name,
		&provider.TypeID,
		&provider.Email,
		&provider.Phone,
		&provider.Active,
		&provider.CreatedBy,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Provider{}, entity.ErrNotFound
		}

		return entity.Provider{}, err
	}

	return provider, nil
}

func (r *Repository) Providers(ctx context.Context) ([]entity.Provider, error) {
	sqlQuery := `SELECT ` + providerColumns + ` FROM providers ORDER BY name ASC`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	providers := make([]entity.Provider, 0)

	for rows.Next() {
		var provider entity.Provider

		err = rows.Scan(
			&provider.ID,
			&provider.Name,
			&provider.TypeID,
			&provider.Email,
			&provider.Phone,
			&provider.Active,
			&provider.CreatedBy,
			&provider.CreatedAt,
			&provider.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	return providers, nil
}

func (r *Repository) UpdateProvider(ctx context.Context, provider entity.Provider) error {
	sqlQuery :=
		`UPDATE providers
		SET name = $1, type_id = $2, email = $3, phone = $4, active = $5, updated_at = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, sqlQuery,
		provider.Name,
		provider.TypeID,
		provider.Email,
		provider.Phone,
		provider.Active,
		provider.UpdatedAt,
		provider.ID,
	)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
