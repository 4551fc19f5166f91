package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/repository"
	"github.com/Juana-Valentina/logi-tofos-sub001/pkg/postgres"
)

func TestRepository_UserRoundTrip(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	now := time.Now().Truncate(time.Millisecond).UTC()

	want := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        uuid.Must(uuid.NewV4()).String() + "@example.com",
		FullName:     uuid.Must(uuid.NewV4()).String(),
		Phone:        "+57 300 000 0000",
		Role:         entity.RoleCoordinador,
		PasswordHash: uuid.Must(uuid.NewV4()).String(),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := repo.CreateUser(context.Background(), want)
	require.NoError(t, err)

	got, err := repo.UserByID(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = repo.UserByEmail(context.Background(), want.Email)
	require.NoError(t, err)
	require.Equal(t, want, got)

	err = repo.CreateUser(context.Background(), want)
	require.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestRepository_UserNotFound(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	_, err := repo.UserByID(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrUserNotFound)

	err = repo.DeleteUser(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestRepository_EventRoundTrip(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	now := time.Now().Truncate(time.Millisecond).UTC()
	creator := createUser(t, repo)
	eventType := createTaxonomy(t, repo, entity.TaxonomyKindEvent)

	want := entity.Event{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        uuid.Must(uuid.NewV4()).String(),
		Description: "feria empresarial",
		TypeID:      eventType.ID,
		Venue:       "Centro de Convenciones",
		StartsAt:    now.Add(24 * time.Hour),
		EndsAt:      now.Add(30 * time.Hour),
		Status:      entity.EventStatusPlanned,
		Budget:      decimal.RequireFromString("2500000.00"),
		CreatedBy:   creator.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := repo.CreateEvent(context.Background(), want)
	require.NoError(t, err)

	got, err := repo.EventByID(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want.Name, got.Name)
	require.True(t, want.Budget.Equal(got.Budget))

	want.Status = entity.EventStatusConfirmed
	want.UpdatedAt = now.Add(time.Minute)

	err = repo.UpdateEvent(context.Background(), want)
	require.NoError(t, err)

	got, err = repo.EventByID(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, entity.EventStatusConfirmed, got.Status)
}

func TestRepository_CloseFinishedEvents(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	now := time.Now().Truncate(time.Millisecond).UTC()
	creator := createUser(t, repo)
	eventType := createTaxonomy(t, repo, entity.TaxonomyKindEvent)

	finished := entity.Event{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      uuid.Must(uuid.NewV4()).String(),
		TypeID:    eventType.ID,
		StartsAt:  now.Add(-48 * time.Hour),
		EndsAt:    now.Add(-24 * time.Hour),
		Status:    entity.EventStatusConfirmed,
		Budget:    decimal.Zero,
		CreatedBy: creator.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.CreateEvent(context.Background(), finished)
	require.NoError(t, err)

	closed, err := repo.CloseFinishedEvents(context.Background(), now)
	require.NoError(t, err)
	require.GreaterOrEqual(t, closed, int64(1))

	got, err := repo.EventByID(context.Background(), finished.ID)
	require.NoError(t, err)
	require.Equal(t, entity.EventStatusClosed, got.Status)
}

func TestRepository_ContractForeignKeys(t *testing.T) {
	t.Parallel()

	repo := repository.New(dbPool(t))

	now := time.Now().Truncate(time.Millisecond).UTC()
	creator := createUser(t, repo)

	orphan := entity.Contract{
		ID:         uuid.Must(uuid.NewV4()),
		Number:     uuid.Must(uuid.NewV4()).String(),
		EventID:    uuid.Must(uuid.NewV4()),
		ProviderID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("100.00"),
		Status:     entity.ContractStatusDraft,
		CreatedBy:  creator.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := repo.CreateContract(context.Background(), orphan)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func createUser(t *testing.T, repo *repository.Repository) entity.User {
	t.Helper()

	now := time.Now().Truncate(time.Millisecond).UTC()

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        uuid.Must(uuid.NewV4()).String() + "@example.com",
		FullName:     uuid.Must(uuid.NewV4()).String(),
		Role:         entity.RoleAdmin,
		PasswordHash: uuid.Must(uuid.NewV4()).String(),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	return user
}

func createTaxonomy(t *testing.T, repo *repository.Repository, kind entity.TaxonomyKind) entity.Taxonomy {
	t.Helper()

	now := time.Now().Truncate(time.Millisecond).UTC()

	taxonomy := entity.Taxonomy{
		ID:        uuid.Must(uuid.NewV4()),
		Kind:      kind,
		Name:      uuid.Must(uuid.NewV4()).String(),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.CreateTaxonomy(context.Background(), taxonomy)
	require.NoError(t, err)

	return taxonomy
}

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	err := postgres.UpMigrations(dsn)
	require.NoError(t, err)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}
