package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

const eventColumns = "id, name, description, type_id, venue, starts_at, ends_at, status, budget, created_by, created_at, updated_at"

func (r *Repository) CreateEvent(ctx context.Context, event entity.Event) error {
	sqlQuery :=
		`INSERT INTO events
			(id, name, description, type_id, venue, starts_at, ends_at, status, budget, created_by, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, sqlQuery,
		event.ID,
		event.Name,
		event.Description,
		event.TypeID,
		event.Venue,
		event.StartsAt,
		event.EndsAt,
		event.Status,
		event.Budget,
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return translatePgError(err)
	}

	return nil
}

func (r *Repository) EventByID(ctx context.Context, id uuid.UUID) (entity.Event, error) {
	sqlQuery := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.TypeID,
		&event.Venue,
		&event.StartsAt,
		&event.EndsAt,
		&event.Status,
		&event.Budget,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Event{}, entity.ErrNotFound
		}

		return entity.Event{}, err
	}

	return event, nil
}

func (r *Repository) Events(ctx context.Context, filter entity.EventsFilter) ([]entity.Event, int, error) {
	countStmt := sq.Select("count(*)").From("events").PlaceholderFormat(sq.Dollar)
	if filter.Status != "" {
		countStmt = countStmt.Where(sq.Eq{"status": filter.Status})
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
		"name",
		"description",
		"type_id",
		"venue",
		"starts_at",
		"ends_at",
		"status",
		"budget",
		"created_by",
		"created_at",
		"updated_at",
	).From("events").PlaceholderFormat(sq.Dollar)

	stmt = applyEventsFilter(stmt, filter)

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	events := make([]entity.Event, 0, filter.Limit)

	for rows.Next() {
		var event entity.Event

		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.TypeID,
			&event.Venue,
			&event.StartsAt,
			&event.EndsAt,
			&event.Status,
			&event.Budget,
			&event.CreatedBy,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		events = append(events, event)
	}

	return events, count, nil
}

func applyEventsFilter(stmt sq.SelectBuilder, filter entity.EventsFilter) sq.SelectBuilder {
	if filter.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": filter.Status})
	}

	stmt = stmt.Limit(filter.Limit)
	stmt = stmt.Offset((filter.Page - 1) * filter.Limit)
	stmt = stmt.OrderBy(fmt.Sprintf("%s %s", filter.SortBy, filter.OrderBy))

	return stmt
}

func (r *Repository) UpdateEvent(ctx context.Context, event entity.Event) error {
	sqlQuery :=
		`UPDATE events
		SET name = $1, description = $2, type_id = $3, venue = $4, starts_at = $5,
			ends_at = $6, status = $7, budget = $8, updated_at = $9
		WHERE id = $10`

	tag, err := r.db.Exec(ctx, sqlQuery,
		event.Name,
		event.Description,
		event.TypeID,
		event.Venue,
		event.StartsAt,
		event.EndsAt,
		event.Status,
		event.Budget,
		event.UpdatedAt,
		event.ID,
	)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return translatePgError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) CloseFinishedEvents(ctx context.Context, now time.Time) (int64, error) {
	sqlQuery := `
		UPDATE events
		SET status = $1, updated_at = $2
		WHERE status = $3 AND ends_at < $2`

	tag, err := r.db.Exec(ctx, sqlQuery, entity.EventStatusClosed, now, entity.EventStatusConfirmed)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
