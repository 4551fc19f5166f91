package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type ProviderRequest struct {
	Name   string    `json:"name"`
	TypeID uuid.UUID `json:"typeId"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone"`
	Active bool      `json:"active"`
}

func (req ProviderRequest) toParams() service.ProviderParams {
	return service.ProviderParams{
		Name:   req.Name,
		TypeID: req.TypeID,
		Email:  req.Email,
		Phone:  req.Phone,
		Active: req.Active,
	}
}

// CreateProvider godoc
// @Summary      Creación de proveedor
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        request body ProviderRequest true "Datos del proveedor"
// @Success      201 {object} entity.Provider
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /providers [post]
func (h *Handler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProviderRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	provider, err := h.s.CreateProvider(ctx, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) || errors.Is(err, entity.ErrEmailInvalidFormat) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusBadRequest, err, "El tipo de proveedor no existe")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, provider)
}

type ProvidersListResponse struct {
	Providers []entity.Provider `json:"providers"`
}

// GetProviders godoc
// @Summary      Lista de proveedores
// @Tags         providers
// @Produce      json
// @Success      200 {object} ProvidersListResponse
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /providers [get]
func (h *Handler) GetProviders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providers, err := h.s.Providers(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ProvidersListResponse{
		Providers: providers,
	})
}

// GetProvider godoc
// @Summary      Proveedor por ID
// @Tags         providers
// @Produce      json
// @Param        id path string true "ID del proveedor"
// @Success      200 {object} entity.Provider
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Proveedor no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /providers/{id} [get]
func (h *Handler) GetProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	provider, err := h.s.ProviderByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Proveedor no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, provider)
}

// UpdateProvider godoc
// @Summary      Actualización de proveedor
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        id path string true "ID del proveedor"
// @Param        request body ProviderRequest true "Datos del proveedor"
// @Success      200 {object} entity.Provider
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      404 {object} ResponseError "Proveedor no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /providers/{id} [put]
func (h *Handler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	var req ProviderRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	provider, err := h.s.UpdateProvider(ctx, id, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) || errors.Is(err, entity.ErrEmailInvalidFormat) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Proveedor no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, provider)
}

// DeleteProvider godoc
// @Summary      Eliminación de proveedor
// @Tags         providers
// @Produce      json
// @Param        id path string true "ID del proveedor"
// @Success      204 "Proveedor eliminado"
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Proveedor no encontrado"
// @Failure      409 {object} ResponseError "El proveedor tiene referencias activas"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /providers/{id} [delete]
func (h *Handler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	err = h.s.DeleteProvider(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Proveedor no encontrado")
			return
		}

		if errors.Is(err, entity.ErrConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "El proveedor tiene referencias activas")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
