package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kioskopos/internal/dto"
	"kioskopos/internal/service"
)

type CashHandler struct{ svc service.CashService }

func NewCashHandler(svc service.CashService) *CashHandler { return &CashHandler{svc: svc} }

// AddTransaction godoc
// @Summary      Registrar movimiento manual de caja
// @Tags         caja
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.TransactionCreate true "Movimiento"
// @Success      201  {object} dto.TransactionResponse
// @Failure      409  {object} apierror.APIError "Sin turno abierto"
// @Router       /v1/cash/transactions [post]
func (h *CashHandler) AddTransaction(c *gin.Context) {
	var req dto.TransactionCreate
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddTransaction(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Ledger godoc
// @Summary      Libro de caja con totales del período
// @Tags         caja
// @Produce      json
// @Security     BearerAuth
// @Param        period query string false "today | week | month | previous_month | all | custom"
// @Param        from   query string false "Desde YYYY-MM-DD (period=custom)"
// @Param        to     query string false "Hasta YYYY-MM-DD (period=custom)"
// @Success      200 {object} dto.LedgerResponse
// @Router       /v1/cash/ledger [get]
func (h *CashHandler) Ledger(c *gin.Context) {
	var filter dto.LedgerFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Ledger(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportCSV godoc
// @Summary      Exportar libro de caja como CSV
// @Tags         caja
// @Produce      text/csv
// @Security     BearerAuth
// @Param        period query string false "today | week | month | previous_month | all | custom"
// @Success      200 {string} string "CSV"
// @Router       /v1/cash/export [get]
func (h *CashHandler) ExportCSV(c *gin.Context) {
	var filter dto.LedgerFilter
	if !bindQuery(c, &filter) {
		return
	}
	data, err := h.svc.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("caja_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
