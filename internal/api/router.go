package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Juana-Valentina/logi-tofos-sub001/docs" //nolint:revive,nolintlint
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/authz"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Recover, mw.Cors, mw.WithIP, mw.Log)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Post("/auth/register", h.Register)
			r.Post("/auth/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate)

			r.Get("/auth/profile", h.Profile)

			r.Route("/users", func(r chi.Router) {
				r.Use(mw.ResolveUser, mw.Permit(authz.ClassUser))

				r.Get("/", h.GetUsers)
				r.Post("/", h.Register)
				r.Get("/{id}", h.GetUser)
				r.Put("/{id}", h.UpdateUser)
				r.Delete("/{id}", h.DeleteUser)
			})

			r.Route("/events", func(r chi.Router) {
				r.Use(mw.Permit(authz.ClassEvent))

				r.Get("/", h.GetEvents)
				r.Post("/", h.CreateEvent)
				r.Get("/{id}", h.GetEvent)
				r.Put("/{id}", h.UpdateEvent)
				r.Delete("/{id}", h.DeleteEvent)
			})

			r.Route("/contracts", func(r chi.Router) {
				r.Use(mw.Permit(authz.ClassContract))

				r.Get("/", h.GetContracts)
				r.Post("/", h.CreateContract)
				r.Get("/{id}", h.GetContract)
				r.Put("/{id}", h.UpdateContract)
				r.Delete("/{id}", h.DeleteContract)
			})

			r.Route("/resources", func(r chi.Router) {
				r.Use(mw.Permit(authz.ClassResource))

				r.Get("/", h.GetResources)
				r.Post("/", h.CreateResource)
				r.Get("/{id}", h.GetResource)
				r.Put("/{id}", h.UpdateResource)
				r.Delete("/{id}", h.DeleteResource)
			})

			r.Route("/providers", func(r chi.Router) {
				r.Use(mw.Permit(authz.ClassProvider))

				r.Get("/", h.GetProviders)
				r.Post("/", h.CreateProvider)
				r.Get("/{id}", h.GetProvider)
				r.Put("/{id}", h.UpdateProvider)
				r.Delete("/{id}", h.DeleteProvider)
			})

			r.Route("/personnel", func(r chi.Router) {
				r.Use(mw.Permit(authz.ClassPersonnel))

				r.Get("/", h.GetPersonnel)
				r.Post("/", h.CreatePersonnel)
				r.Get("/{id}", h.GetPersonnelByID)
				r.Put("/{id}", h.UpdatePersonnel)
				r.Delete("/{id}", h.DeletePersonnel)
			})

			r.Route("/taxonomies", func(r chi.Router) {
				r.Use(mw.Permit(authz.ClassTaxonomy))

				r.Get("/", h.GetTaxonomies)
				r.Post("/", h.CreateTaxonomy)
				r.Get("/{id}", h.GetTaxonomy)
				r.Put("/{id}", h.UpdateTaxonomy)
				r.Delete("/{id}", h.DeleteTaxonomy)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(mw.Permit(authz.ClassReport))

				r.Get("/summary", h.GetSummary)
			})
		})
	})

	return router
}
