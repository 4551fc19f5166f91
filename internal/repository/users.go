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

const userColumns = "id, email, full_name, phone, role, password_hash, active, created_at, updated_at"

func (r *Repository) CreateUser(ctx context.Context, user entity.User) error {
	sqlQuery :=
		`INSERT INTO users
			(id, email, full_name, phone, role, password_hash, active, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, sqlQuery,
		user.ID,
		user.Email,
		user.FullName,
		user.Phone,
		user.Role,
		user.PasswordHash,
		user.Active,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}

	return nil
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	sqlQuery := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	return r.scanUser(r.db.QueryRow(ctx, sqlQuery, email))
}

func (r *Repository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	sqlQuery := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return r.scanUser(r.db.QueryRow(ctx, sqlQuery, id))
}

func (r *Repository) Users(ctx context.Context, filter entity.UsersFilter) ([]entity.User, int, error) {
	countStmt := sq.Select("count(*)").From("users").PlaceholderFormat(sq.Dollar)
	if filter.Role != "" {
		countStmt = countStmt.Where(sq.Eq{"role": filter.Role})
	}

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
		"email",
		"full_name",
		"phone",
		"role",
		"password_hash",
		"active",
		"created_at",
		"updated_at",
	).From("users").PlaceholderFormat(sq.Dollar)

	if filter.Role != "" {
		stmt = stmt.Where(sq.Eq{"role": filter.Role})
	}

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

	users := make([]entity.User, 0, filter.Limit)

	for rows.Next() {
		var user entity.User

		err = rows.Scan(
			&user.ID,
			&user.Email,
			&user.FullName,
			&user.Phone,
			&user.Role,
			&user.PasswordHash,
			&user.Active,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		users = append(users, user)
	}

	return users, count, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user entity.User) error {
	sqlQuery :=
		`UPDATE users
		SET email = $1, full_name = $2, phone = $3, role = $4, active = $5, updated_at = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, sqlQuery,
		user.Email,
		user.FullName,
		user.Phone,
		user.Role,
		user.Active,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

func (r *Repository) scanUser(row pgx.Row) (entity.User, error) {
	var user entity.User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Phone,
		&user.Role,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}
