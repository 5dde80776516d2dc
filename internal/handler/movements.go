package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kioskopos/internal/dto"
	"kioskopos/internal/service"
)

type MovementsHandler struct{ svc service.MovementService }

func NewMovementsHandler(svc service.MovementService) *MovementsHandler {
	return &MovementsHandler{svc: svc}
}

// RegisterIncome godoc
// @Summary      Registrar ingreso de mercadería
// @Description  Suma stock al producto y deja el movimiento registrado con precio y proveedor, en una sola transacción.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.IncomeCreate true "Ingreso"
// @Success      201  {object} dto.MovementResponse
// @Router       /v1/movements/income [post]
func (h *MovementsHandler) RegisterIncome(c *gin.Context) {
	var req dto.IncomeCreate
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterIncome(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar movimientos de inventario
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        type     query string false "income | sale"
// @Param        category query string false "Categoría exacta"
// @Param        provider query string false "Proveedor exacto"
// @Param        search   query string false "Busca en producto y descripción"
// @Success      200 {object} object
// @Router       /v1/movements [get]
func (h *MovementsHandler) List(c *gin.Context) {
	var filter dto.MovementFilter
	if !bindQuery(c, &filter) {
		return
	}
	items, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

func (h *MovementsHandler) Summary(c *gin.Context) {
	var filter dto.MovementFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovementsHandler) Providers(c *gin.Context) {
	resp, err := h.svc.Providers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovementsHandler) Categories(c *gin.Context) {
	resp, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
