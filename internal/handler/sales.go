package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kioskopos/internal/dto"
	"kioskopos/internal/service"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// CompleteSale godoc
// @Summary      Cobrar el carrito actual
// @Description  Liquida la venta en una transacción: registro de venta, descuento de stock, movimientos de inventario y filas de caja.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CompleteSaleRequest true "Pagos y datos del cliente"
// @Success      201  {object} dto.SaleResponse
// @Failure      409  {object} apierror.APIError "Carrito vacío, sin turno abierto o stock insuficiente"
// @Failure      422  {object} apierror.APIError "Pagos no cuadran o falta cliente/lote"
// @Router       /v1/sales [post]
func (h *SalesHandler) CompleteSale(c *gin.Context) {
	var req dto.CompleteSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CompleteSale(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "Desde YYYY-MM-DD"
// @Param        to   query string false "Hasta YYYY-MM-DD"
// @Success      200  {object} object
// @Router       /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
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

func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
