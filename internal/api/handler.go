package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type Service interface {
	Register(ctx context.Context, params service.RegisterParams) (entity.User, error)
	Login(ctx context.Context, email, password string) (entity.UserTokens, error)

	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	Users(ctx context.Context, filter entity.UsersFilter) ([]entity.User, int, error)
	UpdateUser(ctx context.Context, params service.UpdateUserParams) (entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateEvent(ctx context.Context, params service.EventParams) (entity.Event, error)
	EventByID(ctx context.Context, id uuid.UUID) (entity.Event, error)
	Events(ctx context.Context, filter entity.EventsFilter) ([]entity.Event, int, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, params service.EventParams) (entity.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	CreateContract(ctx context.Context, params service.ContractParams) (entity.Contract, error)
	ContractByID(ctx context.Context, id uuid.UUID) (entity.Contract, error)
	Contracts(ctx context.Context, filter entity.ContractsFilter) ([]entity.Contract, int, error)
	UpdateContract(ctx context.Context, id uuid.UUID, params service.ContractParams) (entity.Contract, error)
	DeleteContract(ctx context.Context, id uuid.UUID) error

	CreateResource(ctx context.Context, params service.ResourceParams) (entity.Resource, error)
	ResourceByID(ctx context.Context, id uuid.UUID) (entity.Resource, error)
	Resources(ctx context.Context) ([]entity.Resource, error)
	UpdateResource(ctx context.Context, id uuid.UUID, params service.ResourceParams) (entity.Resource, error)
	DeleteResource(ctx context.Context, id uuid.UUID) error

	CreateProvider(ctx context.Context, params service.ProviderParams) (entity.Provider, error)
	ProviderByID(ctx context.Context, id uuid.UUID) (entity.Provider, error)
	Providers(ctx context.Context) ([]entity.Provider, error)
	UpdateProvider(ctx context.Context, id uuid.UUID, params service.ProviderParams) (entity.Provider, error)
	DeleteProvider(ctx context.Context, id uuid.UUID) error

	CreatePersonnel(ctx context.Context, params service.PersonnelParams) (entity.Personnel, error)
	PersonnelByID(ctx context.Context, id uuid.UUID) (entity.Personnel, error)
	Personnel(ctx context.Context) ([]entity.Personnel, error)
	UpdatePersonnel(ctx context.Context, id uuid.UUID, params service.PersonnelParams) (entity.Personnel, error)
	DeletePersonnel(ctx context.Context, id uuid.UUID) error

	CreateTaxonomy(ctx context.Context, params service.TaxonomyParams) (entity.Taxonomy, error)
	TaxonomyByID(ctx context.Context, id uuid.UUID) (entity.Taxonomy, error)
	Taxonomies(ctx context.Context, kind entity.TaxonomyKind) ([]entity.Taxonomy, error)
	UpdateTaxonomy(ctx context.Context, id uuid.UUID, params service.TaxonomyParams) (entity.Taxonomy, error)
	DeleteTaxonomy(ctx context.Context, id uuid.UUID) error

	Summary(ctx context.Context) (entity.Summary, error)
}

// @title LogiEventos API
// @version 1.0
// @description API REST para la gestión logística de eventos.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Estado del servicio
// @Description  Devuelve el estado de funcionamiento del servicio
// @Tags         health
// @Success      200 {string} string "El servicio funciona"
// @Failure      500 {object} ResponseError "El servicio no funciona"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("El servicio funciona\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "El servicio no funciona")
	}
}

// pathID parses the {id} route parameter set by chi.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id param: %w", entity.ErrIncorrectRequestBody)
	}

	return id, nil
}

func parsePagination(url url.Values) (page, limit uint64) {
	p, err := strconv.Atoi(url.Get("page"))
	if err != nil || p <= 0 {
		p = 1
	}

	l, err := strconv.Atoi(url.Get("limit"))
	if err != nil || l <= 0 || l > 100 {
		l = 20
	}

	return uint64(p), uint64(l)
}

func sortParams(url url.Values, defaultSort entity.SortBy) (entity.SortBy, entity.OrderBy) {
	sortBy := entity.SortBy(url.Get("sortBy"))
	if sortBy == "" {
		sortBy = defaultSort
	}

	orderBy := entity.OrderBy(url.Get("orderBy"))
	if orderBy == "" {
		orderBy = entity.ASC
	}

	return sortBy, orderBy
}
