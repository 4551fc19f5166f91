package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type UsersListResponse struct {
	TotalUsers int           `json:"totalUsers"`
	Users      []entity.User `json:"users"`
}

// GetUsers godoc
// @Summary      Lista de usuarios
// @Description  Devuelve la lista paginada de usuarios
// @Tags         users
// @Produce      json
// @Param        page query int false "Número de página"
// @Param        limit query int false "Usuarios por página"
// @Param        role query string false "Filtro por rol" Enums(admin, coordinador, lider)
// @Param        sortBy query string false "Campo de ordenación" Enums(full_name, email, created_at)
// @Param        orderBy query string false "Dirección de ordenación" Enums(asc, desc)
// @Success      200 {object} UsersListResponse
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      401 {object} ResponseError "No autorizado"
// @Failure      403 {object} ResponseError "Permisos insuficientes"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /users [get]
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()

	page, limit := parsePagination(query)
	sortBy, orderBy := sortParams(query, entity.SortByCreatedAt)

	role := query.Get("role")
	if role != "" && !entity.IsValidRole(role) {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrUnknownRole, errBadParamsText)
		return
	}

	err := service.ValidateListQuery(page, limit, sortBy, orderBy,
		entity.SortByFullName, entity.SortByEmail, entity.SortByCreatedAt)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	users, total, err := h.s.Users(ctx, entity.UsersFilter{
		Page:    page,
		Limit:   limit,
		Role:    role,
		SortBy:  sortBy,
		OrderBy: orderBy,
	})
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, UsersListResponse{
		TotalUsers: total,
		Users:      users,
	})
}

// GetUser godoc
// @Summary      Usuario por ID
// @Tags         users
// @Produce      json
// @Param        id path string true "ID del usuario"
// @Success      200 {object} entity.User
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Usuario no encontrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	user, err := h.s.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Usuario no encontrado")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// UpdateUser godoc
// @Summary      Actualización de usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "ID del usuario"
// @Param        request body UpdateUserRequest true "Datos del usuario"
// @Success      200 {object} entity.User
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      404 {object} ResponseError "Usuario no encontrado"
// @Failure      409 {object} ResponseError "El correo ya está registrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	var req UpdateUserRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	user, err := h.s.UpdateUser(ctx, service.UpdateUserParams{
		ID:       id,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
		Active:   req.Active,
	})
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Usuario no encontrado")
			return
		}

		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "El correo ya está registrado")
			return
		}

		if errors.Is(err, entity.ErrUnknownRole) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Eliminación de usuario
// @Description  Elimina la cuenta. Un usuario no puede eliminarse a sí mismo.
// @Tags         users
// @Produce      json
// @Param        id path string true "ID del usuario"
// @Success      204 "Usuario eliminado"
// @Failure      400 {object} ResponseError "Parámetros inválidos"
// @Failure      404 {object} ResponseError "Usuario no encontrado"
// @Failure      409 {object} ResponseError "No se puede eliminar la propia cuenta"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadParamsText)
		return
	}

	err = h.s.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Usuario no encontrado")
			return
		}

		if errors.Is(err, entity.ErrConflict) {
			SendErr(ctx, w, http.StatusConflict, err, "No se puede eliminar la propia cuenta")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
