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

type ContractRequest struct {
	Number     string                `json:"number"`
	EventID    uuid.UUID             `json:"eventId"`
	ProviderID uuid.UUID             `json:"providerId"`
	Amount     decimal.Decimal       `json:"amount"`
	Status     entity.ContractStatus `json:"status"`
}

func (req ContractRequest) toParams() service.ContractParams {
	return service.ContractParams{
		Number:     req.Number,
		EventID:    req.EventID,
		ProviderID: req.ProviderID,
		Amount:     req.Amount,
		Status:     req.Status,
	}
}

// CreateContract godoc
// @Summary      Creación de contrato
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        request body ContractRequest true "Datos del contrato"
// @Success      201 {object} entity.Contract
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      409 {object} ResponseError "El número de contrato ya existe"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /contracts [post]
func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ContractRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	contract, err := h.s.CreateContract(ctx, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusBadRequest, err, "El evento o el proveedor no existe")
			return
		}

		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "El número de contrato ya existe")
			return
		}

		if errors.Is(err, entity.ErrConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "El proveedor está inactivo")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, contract)
}

type ContractsListResponse struct {
	TotalContracts int               `json:"totalContracts"`
	Contracts      []entity.Contract `json:"contracts"`
}

// GetContracts godoc
// @Summary      Lista de contratos
// @Tags         contracts
// @Produce      json
// @Param        page query int false "Número de página"
// @Param        limit query int false "Contratos por página"
// @Param        eventId query string false "Filtro por evento"
// @Param        status query string false "Filtro por estado" Enums(draft, signed, cancelled)
// @Param        sortBy query string false "Campo de ordenación" Enums(number, created_at)
// @Param        orderBy query string false "Dirección de ordenación" Enums(asc, desc)
// @Success      200 {object} ContractsListResponse
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /contracts [get]
func (h *Handler) GetContracts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()

	page, limit := parsePagination(query)
	sortBy, orderBy := sortParams(query, entity.SortByCreatedAt)

	status := entity.ContractStatus(query.Get("status"))
	if status != "" && !status.IsValid() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errBadParamsText)
		return
	}

	var eventID uuid.UUID

	if qEventID := query.Get("eventId"); qEventID != "" {
		parsed, err := uuid.FromString(qEventID)
		if err != nil || parsed.IsNil() {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
			return
		}

		eventID = parsed
	}

	err := service.ValidateListQuery(page, limit, sortBy, orderBy,
		entity.SortByNumber, entity.SortByCreatedAt)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	contracts, total, err := h.s.Contracts(ctx, entity.ContractsFilter{
		Page:    page,
		Limit:   limit,
		EventID: eventID,
		Status:  status,
		SortBy:  sortBy,
		OrderBy: orderBy,
	})
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ContractsListResponse{
		TotalContracts: total,
		Contracts:      contracts,
	})
}

// GetContract godoc
// @Summary      Contrato por ID
// @Tags         contracts
// @Produce      json
// @Param        id path string true "ID del contrato"
// @Success      200 {object} entity.Contract
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Contrato no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /contracts/{id} [get]
func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	contract, err := h.s.ContractByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Contrato no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, contract)
}

// UpdateContract godoc
// @Summary      Actualización de contrato
// @Description  Un contrato firmado solo admite su cancelación
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id path string true "ID del contrato"
// @Param        request body ContractRequest true "Datos del contrato"
// @Success      200 {object} entity.Contract
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      404 {object} ResponseError "Contrato no encontrado"
// @Failure      409 {object} ResponseError "El contrato está firmado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /contracts/{id} [put]
func (h *Handler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	var req ContractRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	contract, err := h.s.UpdateContract(ctx, id, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Contrato no encontrado")
			return
		}

		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "El número de contrato ya existe")
			return
		}

		if errors.Is(err, entity.ErrConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "El contrato está firmado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, contract)
}

// DeleteContract godoc
// @Summary      Eliminación de contrato
// @Description  Elimina un contrato que no esté firmado
// @Tags         contracts
// @Produce      json
// @Param        id path string true "ID del contrato"
// @Success      204 "Contrato eliminado"
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Contrato no encontrado"
// @Failure      409 {object} ResponseError "El contrato está firmado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /contracts/{id} [delete]
func (h *Handler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	err = h.s.DeleteContract(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Contrato no encontrado")
			return
		}

		if errors.Is(err, entity.ErrConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "El contrato está firmado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
