package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type EventRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	TypeID      uuid.UUID          `json:"typeId"`
	Venue       string             `json:"venue"`
	StartsAt    time.Time          `json:"startsAt"`
	EndsAt      time.Time          `json:"endsAt"`
	Status      entity.EventStatus `json:"status"`
	Budget      decimal.Decimal    `json:"budget"`
}

func (req EventRequest) toParams() service.EventParams {
	return service.EventParams{
		Name:        req.Name,
		Description: req.Description,
		TypeID:      req.TypeID,
		Venue:       req.Venue,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Status:      req.Status,
		Budget:      req.Budget,
	}
}

// CreateEvent godoc
// @Summary      Creación de evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body EventRequest true "Datos del evento"
// @Success      201 {object} entity.Event
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      403 {object} ResponseError "Permisos insuficientes"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /events [post]
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EventRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	event, err := h.s.CreateEvent(ctx, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusBadRequest, err, "El tipo de evento no existe")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, event)
}

type EventsListResponse struct {
	TotalEvents int            `json:"totalEvents"`
	Events      []entity.Event `json:"events"`
}

// GetEvents godoc
// @Summary      Lista de eventos
// @Tags         events
// @Produce      json
// @Param        page query int false "Número de página"
// @Param        limit query int false "Eventos por página"
// @Param        status query string false "Filtro por estado" Enums(planned, confirmed, cancelled, closed)
// @Param        sortBy query string false "Campo de ordenación" Enums(name, starts_at, created_at)
// @Param        orderBy query string false "Dirección de ordenación" Enums(asc, desc)
// @Success      200 {object} EventsListResponse
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /events [get]
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()

	page, limit := parsePagination(query)
	sortBy, orderBy := sortParams(query, entity.SortByStartsAt)

	status := entity.EventStatus(query.Get("status"))
	if status != "" && !status.IsValid() {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, errBadParamsText)
		return
	}

	err := service.ValidateListQuery(page, limit, sortBy, orderBy,
		entity.SortByName, entity.SortByStartsAt, entity.SortByCreatedAt)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	events, total, err := h.s.Events(ctx, entity.EventsFilter{
		Page:    page,
		Limit:   limit,
		Status:  status,
		SortBy:  sortBy,
		OrderBy: orderBy,
	})
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, EventsListResponse{
		TotalEvents: total,
		Events:      events,
	})
}

// GetEvent godoc
// @Summary      Evento por ID
// @Tags         events
// @Produce      json
// @Param        id path string true "ID del evento"
// @Success      200 {object} entity.Event
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Evento no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /events/{id} [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	event, err := h.s.EventByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Evento no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary      Actualización de evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id path string true "ID del evento"
// @Param        request body EventRequest true "Datos del evento"
// @Success      200 {object} entity.Event
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      404 {object} ResponseError "Evento no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /events/{id} [put]
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	var req EventRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	event, err := h.s.UpdateEvent(ctx, id, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Evento no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary      Eliminación de evento
// @Description  Elimina un evento sin contratos firmados asociados
// @Tags         events
// @Produce      json
// @Param        id path string true "ID del evento"
// @Success      204 "Evento eliminado"
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Evento no encontrado"
// @Failure      409 {object} ResponseError "El evento tiene contratos firmados"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /events/{id} [delete]
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	err = h.s.DeleteEvent(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Evento no encontrado")
			return
		}

		if errors.Is(err, entity.ErrConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "El evento tiene contratos firmados")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
