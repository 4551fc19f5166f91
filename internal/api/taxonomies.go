package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type TaxonomyRequest struct {
	Kind        entity.TaxonomyKind `json:"kind"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Active      bool                `json:"active"`
}

func (req TaxonomyRequest) toParams() service.TaxonomyParams {
	return service.TaxonomyParams{
		Kind:        req.Kind,
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	}
}

// CreateTaxonomy godoc
// @Summary      Creación de tipo
// @Description  Crea un tipo dentro de un catálogo (event, contract, resource, provider, personnel)
// @Tags         taxonomies
// @Accept       json
// @Produce      json
// @Param        request body TaxonomyRequest true "Datos del tipo"
// @Success      201 {object} entity.Taxonomy
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      409 {object} ResponseError "El tipo ya existe en el catálogo"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /taxonomies [post]
func (h *Handler) CreateTaxonomy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TaxonomyRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	taxonomy, err := h.s.CreateTaxonomy(ctx, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "El tipo ya existe en el catálogo")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, taxonomy)
}

type TaxonomiesListResponse struct {
	Taxonomies []entity.Taxonomy `json:"taxonomies"`
}

// GetTaxonomies godoc
// @Summary      Lista de tipos
// @Tags         taxonomies
// @Produce      json
// @Param        kind query string false "Filtro por catálogo" Enums(event, contract, resource, provider, personnel)
// @Success      200 {object} TaxonomiesListResponse
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /taxonomies [get]
func (h *Handler) GetTaxonomies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind := entity.TaxonomyKind(r.URL.Query().Get("kind"))

	taxonomies, err := h.s.Taxonomies(ctx, kind)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, TaxonomiesListResponse{
		Taxonomies: taxonomies,
	})
}

// GetTaxonomy godoc
// @Summary      Tipo por ID
// @Tags         taxonomies
// @Produce      json
// @Param        id path string true "ID del tipo"
// @Success      200 {object} entity.Taxonomy
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Tipo no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /taxonomies/{id} [get]
func (h *Handler) GetTaxonomy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	taxonomy, err := h.s.TaxonomyByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Tipo no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, taxonomy)
}

// UpdateTaxonomy godoc
// @Summary      Actualización de tipo
// @Description  El catálogo (kind) de un tipo no se puede cambiar
// @Tags         taxonomies
// @Accept       json
// @Produce      json
// @Param        id path string true "ID del tipo"
// @Param        request body TaxonomyRequest true "Datos del tipo"
// @Success      200 {object} entity.Taxonomy
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      404 {object} ResponseError "Tipo no encontrado"
// @Failure      409 {object} ResponseError "No se puede cambiar el catálogo del tipo"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /taxonomies/{id} [put]
func (h *Handler) UpdateTaxonomy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	var req TaxonomyRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	taxonomy, err := h.s.UpdateTaxonomy(ctx, id, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Tipo no encontrado")
			return
		}

		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "El tipo ya existe en el catálogo")
			return
		}

		if errors.Is(err, entity.ErrConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "No se puede cambiar el catálogo del tipo")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, taxonomy)
}

// DeleteTaxonomy godoc
// @Summary      Eliminación de tipo
// @Description  Un tipo referenciado por registros existentes no se puede eliminar
// @Tags         taxonomies
// @Produce      json
// @Param        id path string true "ID del tipo"
// @Success      204 "Tipo eliminado"
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Tipo no encontrado"
// @Failure      409 {object} ResponseError "El tipo está en uso"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /taxonomies/{id} [delete]
func (h *Handler) DeleteTaxonomy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	err = h.s.DeleteTaxonomy(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Tipo no encontrado")
			return
		}

		if errors.Is(err, entity.ErrConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "El tipo está en uso")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
