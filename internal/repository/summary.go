package repository

import (
	"context"
	"time"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

const upcomingWindow = 30 * 24 * time.Hour

func (r *Repository) Summary(ctx context.Context, now time.Time) (entity.Summary, error) {
	summary := entity.Summary{
		EventsByStatus: make(map[entity.EventStatus]int),
	}

	rows, err := r.db.Query(ctx, `SELECT status, count(*) FROM events GROUP BY status`)
	if err != nil {
		return entity.Summary{}, err
	}

	defer rows.Close()

	for rows.Next() {
		var (
			status entity.EventStatus
			count  int
		)

		if err = rows.Scan(&status, &count); err != nil {
			return entity.Summary{}, err
		}

		summary.EventsByStatus[status] = count
		summary.TotalEvents += count
	}

	rows.Close()

	sqlQuery := `
		SELECT count(*), COALESCE(SUM(amount) FILTER (WHERE status = $1), 0)
		FROM contracts`

	err = r.db.QueryRow(ctx, sqlQuery, entity.ContractStatusSigned).
		Scan(&summary.TotalContracts, &summary.ContractedAmount)
	if err != nil {
		return entity.Summary{}, err
	}

	sqlQuery = `
		SELECT
			(SELECT count(*) FROM resources),
			(SELECT count(*) FROM providers),
			(SELECT count(*) FROM personnel)`

	err = r.db.QueryRow(ctx, sqlQuery).
		Scan(&summary.TotalResources, &summary.TotalProviders, &summary.TotalPersonnel)
	if err != nil {
		return entity.Summary{}, err
	}

	upcoming, err := r.upcomingEvents(ctx, now)
	if err != nil {
		return entity.Summary{}, err
	}

	summary.UpcomingEvents = upcoming

	return summary, nil
}

func (r *Repository) upcomingEvents(ctx context.Context, now time.Time) ([]entity.Event, error) {
	sqlQuery := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE starts_at >= $1 AND starts_at < $2 AND status IN ($3, $4)
		ORDER BY starts_at ASC
		LIMIT 10`

	rows, err := r.db.Query(ctx, sqlQuery,
		now,
		now.Add(upcomingWindow),
		entity.EventStatusPlanned,
		entity.EventStatusConfirmed,
	)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	events := make([]entity.Event, 0, 10)

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
			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}
