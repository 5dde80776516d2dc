package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kioskopos/internal/apierror"
	"kioskopos/internal/dto"
	"kioskopos/internal/infra"
	"kioskopos/internal/middleware"
	"kioskopos/internal/service"
)

type ShiftsHandler struct {
	svc       service.CashService
	configSvc service.ConfigService
}

func NewShiftsHandler(svc service.CashService, configSvc service.ConfigService) *ShiftsHandler {
	return &ShiftsHandler{svc: svc, configSvc: configSvc}
}

// Open godoc
// @Summary      Abrir turno de caja
// @Tags         turnos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.OpenShiftRequest true "Monto inicial"
// @Success      201  {object} dto.ShiftResponse
// @Failure      409  {object} apierror.APIError "Ya hay un turno abierto"
// @Router       /v1/shifts/open [post]
func (h *ShiftsHandler) Open(c *gin.Context) {
	var req dto.OpenShiftRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.OpenShift(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Close godoc
// @Summary      Cerrar turno con arqueo
// @Description  Registra el efectivo contado y calcula la diferencia contra el esperado. El resultado es informativo; el conteo se acepta siempre.
// @Tags         turnos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CloseShiftRequest true "Efectivo contado"
// @Success      200  {object} dto.ShiftResponse
// @Failure      409  {object} apierror.APIError "Sin turno abierto"
// @Router       /v1/shifts/close [post]
func (h *ShiftsHandler) Close(c *gin.Context) {
	var req dto.CloseShiftRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CloseShift(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Current godoc
// @Summary      Turno abierto del operador
// @Tags         turnos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ShiftResponse
// @Failure      404 {object} apierror.APIError "Sin turno abierto"
// @Router       /v1/shifts/current [get]
func (h *ShiftsHandler) Current(c *gin.Context) {
	resp, err := h.svc.CurrentShift(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary      Historial de turnos (solo administradores)
// @Tags         turnos
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Máximo de turnos (default 50)"
// @Success      200 {array} dto.ShiftResponse
// @Router       /v1/shifts [get]
func (h *ShiftsHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	resp, err := h.svc.ShiftHistory(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report godoc
// @Summary      Reporte PDF del cierre de turno
// @Description  Los cajeros solo pueden descargar reportes de sus propios turnos.
// @Tags         turnos
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID del turno"
// @Success      200 {string} string "PDF"
// @Failure      403 {object} apierror.APIError "Turno de otro operador"
// @Router       /v1/shifts/{id}/report [get]
func (h *ShiftsHandler) Report(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	shift, txs, err := h.svc.ShiftDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Cashiers may only see their own shifts; administrators see all
	claims := middleware.GetClaims(c)
	if claims.Rol != middleware.RolAdministrador && shift.UserID.String() != claims.UserID {
		c.JSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
		return
	}

	businessName := "Kiosco"
	if cfg, err := h.configSvc.Get(c.Request.Context()); err == nil {
		businessName = cfg.BusinessName
	}

	pdf, err := infra.GenerateShiftReportPDF(businessName, shift, txs)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("cierre_%s.pdf", shift.StartDate.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
