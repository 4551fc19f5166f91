package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Juana-Valentina/logi-tofos-sub001/internal/entity"
	"github.com/Juana-Valentina/logi-tofos-sub001/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register godoc
// @Summary      Registro de usuario
// @Description  Crea una cuenta nueva. El rol por defecto es lider.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Datos del usuario"
// @Success      201 {object} entity.User "Usuario creado"
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      409 {object} ResponseError "El correo ya está registrado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	user, err := h.s.Register(ctx, service.RegisterParams{
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			SendErr(ctx, w, http.StatusConflict, err, "El correo ya está registrado")
			return
		}

		if errors.Is(err, entity.ErrPasswordInvalidLen) {
			SendErr(ctx, w, http.StatusBadRequest, err, "La contraseña debe tener entre 8 y 64 caracteres")
			return
		}

		if errors.Is(err, entity.ErrEmailInvalidFormat) || errors.Is(err, entity.ErrEmailInvalidLen) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Formato de correo inválido")
			return
		}

		if errors.Is(err, entity.ErrUnknownRole) || errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, user)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Inicio de sesión
// @Description  Valida las credenciales y devuelve un token de acceso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credenciales"
// @Success      200 {object} entity.UserTokens
// @Failure      400 {object} ResponseError "Cuerpo de la solicitud inválido"
// @Failure      401 {object} ResponseError "Credenciales inválidas"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyText)
		return
	}

	tokens, err := h.s.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Credenciales inválidas")
			return
		}

		if errors.Is(err, entity.ErrUserInactive) {
			SendErr(ctx, w, http.StatusUnauthorized, err, "El usuario está inactivo")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, tokens)
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Description  Devuelve los datos de la cuenta asociada al token
// @Tags         auth
// @Produce      json
// @Success      200 {object} entity.User
// @Failure      401 {object} ResponseError "No autorizado"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /auth/profile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, err, "Token de acceso requerido")
		return
	}

	user, err := h.s.UserByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			SendErr(ctx, w, http.StatusUnauthorized, err, "El usuario ya no existe")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}
