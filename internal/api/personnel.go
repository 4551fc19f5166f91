package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type PersonnelRequest struct {
	FullName string        `json:"fullName"`
	TypeID   uuid.UUID     `json:"typeId"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	EventID  uuid.NullUUID `json:"eventId"`
	Active   bool          `json:"active"`
}

func (req PersonnelRequest) toParams() service.PersonnelParams {
	return service.PersonnelParams{
		FullName: req.FullName,
		TypeID:   req.TypeID,
		Email:    req.Email,
		Phone:    req.Phone,
		EventID:  req.EventID,
		Active:   req.Active,
	}
}

// CreatePersonnel godoc
// @Summary      Registro de personal
// @Tags         personnel
// @Accept       json
// @Produce      json
// @Param        request body PersonnelRequest true "Datos del personal"
// @Success      201 {object} entity.Personnel
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /personnel [post]
func (h *Handler) CreatePersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PersonnelRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	person, err := h.s.CreatePersonnel(ctx, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) || errors.Is(err, entity.ErrEmailInvalidFormat) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusBadRequest, err, "El tipo o el evento no existe")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, person)
}

type PersonnelListResponse struct {
	Personnel []entity.Personnel `json:"personnel"`
}

// GetPersonnel godoc
// @Summary      Lista de personal
// @Tags         personnel
// @Produce      json
// @Success      200 {object} PersonnelListResponse
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /personnel [get]
func (h *Handler) GetPersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	personnel, err := h.s.Personnel(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, PersonnelListResponse{
		Personnel: personnel,
	})
}

// GetPersonnelByID godoc
// @Summary      Personal por ID
// @Tags         personnel
// @Produce      json
// @Param        id path string true "ID del personal"
// @Success      200 {object} entity.Personnel
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Personal no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /personnel/{id} [get]
func (h *Handler) GetPersonnelByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	person, err := h.s.PersonnelByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Personal no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, person)
}

// UpdatePersonnel godoc
// @Summary      Actualización de personal
// @Tags         personnel
// @Accept       json
// @Produce      json
// @Param        id path string true "ID del personal"
// @Param        request body PersonnelRequest true "Datos del personal"
// @Success      200 {object} entity.Personnel
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      404 {object} ResponseError "Personal no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /personnel/{id} [put]
func (h *Handler) UpdatePersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	var req PersonnelRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	person, err := h.s.UpdatePersonnel(ctx, id, req.toParams())
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) || errors.Is(err, entity.ErrEmailInvalidFormat) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Personal no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, person)
}

// DeletePersonnel godoc
// @Summary      Eliminación de personal
// @Tags         personnel
// @Produce      json
// @Param        id path string true "ID del personal"
// @Success      204 "Personal eliminado"
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Personal no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /personnel/{id} [delete]
func (h *Handler) DeletePersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	err = h.s.DeletePersonnel(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Personal no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
