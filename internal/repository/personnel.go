package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

const personnelColumns = "id, full_name, type_id, email, phone, event_id, active, created_by, created_at, updated_at"

func (r *Repository) CreatePersonnel(ctx context.Context, person entity.Personnel) error {
	sqlQuery :=
		`INSERT INTO personnel
			(id, full_name, type_id, email, phone, event_id, active, created_by, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, sqlQuery,
		person.ID,
		person.FullName,
		person.TypeID,
		person.Email,
		person.Phone,
		person.EventID,
		person.Active,
		person.CreatedBy,
		person.CreatedAt,
		person.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}

	return nil
}

func (r *Repository) PersonnelByID(ctx context.Context, id uuid.UUID) (entity.Personnel, error) {
	sqlQuery := `SELECT ` + personnelColumns + ` FROM personnel WHERE id = $1`

	var person entity.Personnel

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&person.ID,
		&person.FullName,
		&person.TypeID,
		&person.Email,
		&person.Phone,
		&person.EventID,
		&person.Active,
		&person.CreatedBy,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Personnel{}, entity.ErrNotFound
		}

		return entity.Personnel{}, err
	}

	return person, nil
}

func (r *Repository) Personnel(ctx context.Context) ([]entity.Personnel, error) {
	sqlQuery := `SELECT ` + personnelColumns + ` FROM personnel ORDER BY full_name ASC`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	people := make([]entity.Personnel, 0)

	for rows.Next() {
		var person entity.Personnel

		err = rows.Scan(
			&person.ID,
			&person.FullName,
			&person.TypeID,
			&person.Email,
			&person.Phone,
			&person.EventID,
			&person.Active,
			&person.CreatedBy,
			&person.CreatedAt,
			&person.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		people = append(people, person)
	}

	return people, nil
}

func (r *Repository) UpdatePersonnel(ctx context.Context, person entity.Personnel) error {
	sqlQuery :=
		`UPDATE personnel
		SET full_name = $1, type_id = $2, email = $3, phone = $4, event_id = $5,
			active = $6, updated_at = $7
		WHERE id = $8`

	tag, err := r.db.Exec(ctx, sqlQuery,
		person.FullName,
		person.TypeID,
		person.Email,
		person.Phone,
		person.EventID,
		person.Active,
		person.UpdatedAt,
		person.ID,
	)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePersonnel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
