package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

func (r *Repository) CreateTaxonomy(ctx context.Context, taxonomy entity.Taxonomy) error {
	sqlQuery :=
		`INSERT INTO taxonomies
			(id, kind, name, description, active, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, sqlQuery,
		taxonomy.ID,
		taxonomy.Kind,
		taxonomy.Name,
		taxonomy.Description,
		taxonomy.Active,
		taxonomy.CreatedAt,
		taxonomy.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}

	return nil
}

func (r *Repository) TaxonomyByID(ctx context.Context, id uuid.UUID) (entity.Taxonomy, error) {
	sqlQuery := `
		SELECT id, kind, name, description, active, created_at, updated_at
		FROM taxonomies
		WHERE id = $1`

	var taxonomy entity.Taxonomy

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&taxonomy.ID,
		&taxonomy.Kind,
		&taxonomy.Name,
		&taxonomy.Description,
		&taxonomy.Active,
		&taxonomy.CreatedAt,
		&taxonomy.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Taxonomy{}, entity.ErrNotFound
		}

		return entity.Taxonomy{}, err
	}

	return taxonomy, nil
}

func (r *Repository) Taxonomies(ctx context.Context, kind entity.TaxonomyKind) ([]entity.Taxonomy, error) {
	stmt := sq.Select(
		"id",
		"kind",
		"name",
		"description",
		"active",
		"created_at",
		"updated_at",
	).From("taxonomies").OrderBy("kind, name").PlaceholderFormat(sq.Dollar)

	if kind != "" {
		stmt = stmt.Where(sq.Eq{"kind": kind})
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	taxonomies := make([]entity.Taxonomy, 0)

	for rows.Next() {
		var taxonomy entity.Taxonomy

		err = rows.Scan(
			&taxonomy.ID,
			&taxonomy.Kind,
			&taxonomy.Name,
			&taxonomy.Description,
			&taxonomy.Active,
			&taxonomy.CreatedAt,
			&taxonomy.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		taxonomies = append(taxonomies, taxonomy)
	}

	return taxonomies, nil
}

func (r *Repository) UpdateTaxonomy(ctx context.Context, taxonomy entity.Taxonomy) error {
	sqlQuery :=
		`UPDATE taxonomies
		SET name = $1, description = $2, active = $3, updated_at = $4
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, sqlQuery,
		taxonomy.Name,
		taxonomy.Description,
		taxonomy.Active,
		taxonomy.UpdatedAt,
		taxonomy.ID,
	)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteTaxonomy(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM taxonomies WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
