package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/mocks"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type TestService struct {
	repo     *mocks.MockRepository
	notifier *mocks.MockNotifier
	s        *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	issuer := service.NewTokenIssuer(testSecret, time.Hour)

	return &TestService{
		repo:     repo,
		notifier: notifier,
		s:        service.New(repo, issuer, notifier),
	}
}

func TestService_RegisterDefaultsRole(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()

	var created entity.User

	ts.repo.EXPECT().CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user entity.User) error {
			created = user
			return nil
		})
	ts.notifier.EXPECT().SendUserRegistered(ctx, gomock.Any())

	user, err := ts.s.Register(ctx, service.RegisterParams{
		Email:    "ana@example.com",
		FullName: "Ana Gómez",
		Password: "secret-123",
	})
	require.NoError(t, err)

	require.Equal(t, entity.RoleLider, user.Role)
	require.True(t, user.Active)
	require.Equal(t, created.ID, user.ID)

	err = bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-123"))
	require.NoError(t, err)
}

func TestService_RegisterIgnoresRequestedRoleWithoutAdmin(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()

	ts.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)
	ts.notifier.EXPECT().SendUserRegistered(ctx, gomock.Any())

	// No principal in the context: the requested role must not stick.
	user, err := ts.s.Register(ctx, service.RegisterParams{
		Email:    "intruso@example.com",
		FullName: "Intruso",
		Password: "secret-123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RoleLider, user.Role)
}

func TestService_RegisterIgnoresRequestedRoleFromCoordinador(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)

	actor := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleCoordinador, Active: true}
	ctx := entity.SetUserToContext(context.Background(), actor)

	ts.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)
	ts.notifier.EXPECT().SendUserRegistered(ctx, gomock.Any())

	user, err := ts.s.Register(ctx, service.RegisterParams{
		Email:    "nuevo@example.com",
		FullName: "Nuevo Usuario",
		Password: "secret-123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RoleLider, user.Role)
}

func TestService_RegisterAdminAssignsRole(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)

	actor := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin, Active: true}
	ctx := entity.SetUserToContext(context.Background(), actor)

	ts.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)
	ts.notifier.EXPECT().SendUserRegistered(ctx, gomock.Any())

	user, err := ts.s.Register(ctx, service.RegisterParams{
		Email:    "coord@example.com",
		FullName: "Coordinadora",
		Password: "secret-123",
		Role:     entity.RoleCoordinador,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RoleCoordinador, user.Role)
}

func TestService_LoginWrongPassword(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	ts.repo.EXPECT().UserByEmail(ctx, "ana@example.com").Return(entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "ana@example.com",
		Role:         entity.RoleLider,
		Active:       true,
		PasswordHash: string(hash),
	}, nil)

	_, err = ts.s.Login(ctx, "ana@example.com", "wrong-password")
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestService_LoginUnknownEmailHidesExistence(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()

	ts.repo.EXPECT().UserByEmail(ctx, "ghost@example.com").
		Return(entity.User{}, entity.ErrUserNotFound)

	_, err := ts.s.Login(ctx, "ghost@example.com", "whatever-123")
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
	require.NotErrorIs(t, err, entity.ErrUserNotFound)
}

func TestService_LoginInactiveUser(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()

	ts.repo.EXPECT().UserByEmail(ctx, "ana@example.com").Return(entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		Email:  "ana@example.com",
		Role:   entity.RoleLider,
		Active: false,
	}, nil)

	_, err := ts.s.Login(ctx, "ana@example.com", "secret-123")
	require.ErrorIs(t, err, entity.ErrUserInactive)
}

func TestService_ResolveUserInactive(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().UserByID(ctx, id).Return(entity.User{
		ID:     id,
		Role:   entity.RoleAdmin,
		Active: false,
	}, nil)

	_, err := ts.s.ResolveUser(ctx, id)
	require.ErrorIs(t, err, entity.ErrUserInactive)
}

func TestService_DeleteUserSelf(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)

	actor := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin, Active: true}
	ctx := entity.SetUserToContext(context.Background(), actor)

	err := ts.s.DeleteUser(ctx, actor.ID)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestService_CreateEventRejectsForeignTaxonomy(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)

	actor := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleCoordinador, Active: true}
	ctx := entity.SetUserToContext(context.Background(), actor)

	typeID := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().TaxonomyByID(ctx, typeID).Return(entity.Taxonomy{
		ID:     typeID,
		Kind:   entity.TaxonomyKindResource,
		Name:   "Sonido",
		Active: true,
	}, nil)

	_, err := ts.s.CreateEvent(ctx, service.EventParams{
		Name:     "Feria",
		TypeID:   typeID,
		StartsAt: time.Now(),
		EndsAt:   time.Now().Add(time.Hour),
		Budget:   decimal.Zero,
	})
	require.ErrorIs(t, err, entity.ErrIncorrectRequestBody)
}

func TestService_DeleteEventWithSignedContracts(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().CountContractsByEventID(ctx, id, entity.ContractStatusSigned).Return(2, nil)

	err := ts.s.DeleteEvent(ctx, id)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestService_UpdateContractSignedIsImmutable(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()

	id := uuid.Must(uuid.NewV4())
	signedAt := time.Now().Add(-time.Hour)

	signed := entity.Contract{
		ID:         id,
		Number:     "C-001",
		EventID:    uuid.Must(uuid.NewV4()),
		ProviderID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("500.00"),
		Status:     entity.ContractStatusSigned,
		SignedAt:   &signedAt,
	}

	params := service.ContractParams{
		Number:     "C-001",
		EventID:    signed.EventID,
		ProviderID: signed.ProviderID,
		Amount:     decimal.RequireFromString("900.00"),
		Status:     entity.ContractStatusSigned,
	}

	ts.repo.EXPECT().ContractByID(ctx, id).Return(signed, nil)

	_, err := ts.s.UpdateContract(ctx, id, params)
	require.ErrorIs(t, err, entity.ErrConflict)

	// Cancellation is the one transition a signed contract accepts.
	params.Status = entity.ContractStatusCancelled

	ts.repo.EXPECT().ContractByID(ctx, id).Return(signed, nil)
	ts.repo.EXPECT().UpdateContract(ctx, gomock.Any()).Return(nil)

	updated, err := ts.s.UpdateContract(ctx, id, params)
	require.NoError(t, err)
	require.Equal(t, entity.ContractStatusCancelled, updated.Status)
}

func TestService_DeleteContractSigned(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().ContractByID(ctx, id).Return(entity.Contract{
		ID:     id,
		Status: entity.ContractStatusSigned,
	}, nil)

	err := ts.s.DeleteContract(ctx, id)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestService_UpdateTaxonomyKindChange(t *testing.T) {
	t.Parallel()

	ts := NewTestService(t)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	ts.repo.EXPECT().TaxonomyByID(ctx, id).Return(entity.Taxonomy{
		ID:     id,
		Kind:   entity.TaxonomyKindEvent,
		Name:   "Conferencia",
		Active: true,
	}, nil)

	_, err := ts.s.UpdateTaxonomy(ctx, id, service.TaxonomyParams{
		Kind:   entity.TaxonomyKindResource,
		Name:   "Conferencia",
		Active: true,
	})
	require.ErrorIs(t, err, entity.ErrConflict)
}
