package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateUser(ctx context.Context, user entity.User) error
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	Users(ctx context.Context, filter entity.UsersFilter) ([]entity.User, int, error)
	UpdateUser(ctx context.Context, user entity.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateTaxonomy(ctx context.Context, taxonomy entity.Taxonomy) error
	TaxonomyByID(ctx context.Context, id uuid.UUID) (entity.Taxonomy, error)
	Taxonomies(ctx context.Context, kind entity.TaxonomyKind) ([]entity.Taxonomy, error)
	UpdateTaxonomy(ctx context.Context, taxonomy entity.Taxonomy) error
	DeleteTaxonomy(ctx context.Context, id uuid.UUID) error

	CreateEvent(ctx context.Context, event entity.Event) error
	EventByID(ctx context.Context, id uuid.UUID) (entity.Event, error)
	Events(ctx context.Context, filter entity.EventsFilter) ([]entity.Event, int, error)
	UpdateEvent(ctx context.Context, event entity.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	CloseFinishedEvents(ctx context.Context, now time.Time) (int64, error)

	CreateContract(ctx context.Context, contract entity.Contract) error
	ContractByID(ctx context.Context, id uuid.UUID) (entity.Contract, error)
	Contracts(ctx context.Context, filter entity.ContractsFilter) ([]entity.Contract, int, error)
	UpdateContract(ctx context.Context, contract entity.Contract) error
	DeleteContract(ctx context.Context, id uuid.UUID) error
	CountContractsByEventID(ctx context.Context, eventID uuid.UUID, status entity.ContractStatus) (int, error)

	CreateResource(ctx context.Context, resource entity.Resource) error
	ResourceByID(ctx context.Context, id uuid.UUID) (entity.Resource, error)
	Resources(ctx context.Context) ([]entity.Resource, error)
	UpdateResource(ctx context.Context, resource entity.Resource) error
	DeleteResource(ctx context.Context, id uuid.UUID) error

	CreateProvider(ctx context.Context, provider entity.Provider) error
	ProviderByID(ctx context.Context, id uuid.UUID) (entity.Provider, error)
	Providers(ctx context.Context) ([]entity.Provider, error)
	UpdateProvider(ctx context.Context, provider entity.Provider) error
	DeleteProvider(ctx context.Context, id uuid.UUID) error

	CreatePersonnel(ctx context.Context, person entity.Personnel) error
	PersonnelByID(ctx context.Context, id uuid.UUID) (entity.Personnel, error)
	Personnel(ctx context.Context) ([]entity.Personnel, error)
	UpdatePersonnel(ctx context.Context, person entity.Personnel) error
	DeletePersonnel(ctx context.Context, id uuid.UUID) error

	Summary(ctx context.Context, now time.Time) (entity.Summary, error)
}

type Notifier interface {
	SendUserRegistered(ctx context.Context, user entity.User)
}

type Service struct {
	repo     Repository
	issuer   *TokenIssuer
	notifier Notifier
}

func New(repo Repository, issuer *TokenIssuer, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		issuer:   issuer,
		notifier: notifier,
	}
}

// Verify validates an access token and returns the principal from its
// claims without touching storage.
func (s *Service) Verify(accessToken string) (entity.User, error) {
	return s.issuer.Verify(accessToken)
}

// ResolveUser re-fetches the persisted user record for routes that must
// not trust token claims alone (accounts deactivated after issuance).
func (s *Service) ResolveUser(ctx context.Context, id uuid.UUID) (entity.User, error) {
	user, err := s.repo.UserByID(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("find user %s: %w", id, err)
	}

	if !user.Active {
		return entity.User{}, fmt.Errorf("user %s: %w", id, entity.ErrUserInactive)
	}

	return user, nil
}

func (s *Service) Summary(ctx context.Context) (entity.Summary, error) {
	summary, err := s.repo.Summary(ctx, time.Now())
	if err != nil {
		return entity.Summary{}, fmt.Errorf("build summary: %w", err)
	}

	return summary, nil
}

// CloseFinishedEvents marks confirmed events whose end date has passed
// as closed. Run periodically from main.
func (s *Service) CloseFinishedEvents(ctx context.Context) (int64, error) {
	return s.repo.CloseFinishedEvents(ctx, time.Now())
}
