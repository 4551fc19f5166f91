package api

import (
	"net/http"
)

// GetSummary godoc
// @Summary      Resumen operativo
// @Description  Totales por entidad, eventos por estado, monto contratado y próximos eventos
// @Tags         reports
// @Produce      json
// @Success      200 {object} entity.Summary
// @Failure      401 {object} ResponseError "No autorizado"
// @Failure      403 {object} ResponseError "Permisos insuficientes"
// @Failure      500 {object} ResponseError "Error del servidor"
// @Security     BearerAuth
// @Router       /reports/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.Summary(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, summary)
}
