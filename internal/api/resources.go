package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type ResourceRequest struct {
	Name       string                `json:"name"`
	TypeID     uuid.UUID             `json:"typeId"`
	Quantity   int                   `json:"quantity"`
	UnitCost   decimal.Decimal       `json:"unitCost"`
	ProviderID uuid.NullUUID         `json:"providerId"`
	Status     entity.ResourceStatus `json:"status"`
}

func (req ResourceRequest) toParams() service.ResourceParams {
	return service.ResourceParams{
		Name:       req.Name,
		TypeID:     req.TypeID,
		Quantity:   req.Quantity,
		UnitCost:   req.UnitCost,
		ProviderID: req.ProviderID,
		Status:     req.Status,
	}
}

// CreateResource godoc
// @Summary      Creación de recurso
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        request body ResourceRequest true "Datos del recurso"
// @Success      201 {object} entity.Resource
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /resources [post]
func (h *Handler) CreateResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ResourceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	resource, err := h.s.CreateResource(ctx, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusBadRequest, err, "El tipo o el proveedor no existe")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, resource)
}

type ResourcesListResponse struct {
	Resources []entity.Resource `json:"resources"`
}

// GetResources godoc
// @Summary      Lista de recursos
// @Tags         resources
// @Produce      json
// @Success      200 {object} ResourcesListResponse
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /resources [get]
func (h *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resources, err := h.s.Resources(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ResourcesListResponse{
		Resources: resources,
	})
}

// GetResource godoc
// @Summary      Recurso por ID
// @Tags         resources
// @Produce      json
// @Param        id path string true "ID del recurso"
// @Success      200 {object} entity.Resource
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Recurso no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /resources/{id} [get]
func (h *Handler) GetResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	resource, err := h.s.ResourceByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Recurso no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, resource)
}

// UpdateResource godoc
// @Summary      Actualización de recurso
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id path string true "ID del recurso"
// @Param        request body ResourceRequest true "Datos del recurso"
// @Success      200 {object} entity.Resource
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      404 {object} ResponseError "Recurso no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /resources/{id} [put]
func (h *Handler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	var req ResourceRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	resource, err := h.s.UpdateResource(ctx, id, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Recurso no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, resource)
}

// DeleteResource godoc
// @Summary      Eliminación de recurso
// @Tags         resources
// @Produce      json
// @Param        id path string true "ID del recurso"
// @Success      204 "Recurso eliminado"
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Recurso no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /resources/{id} [delete]
func (h *Handler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	err = h.s.DeleteResource(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Recurso no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
