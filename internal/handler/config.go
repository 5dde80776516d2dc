package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kioskopos/internal/dto"
	"kioskopos/internal/service"
)

type ConfigHandler struct{ svc service.ConfigService }

func NewConfigHandler(svc service.ConfigService) *ConfigHandler { return &ConfigHandler{svc: svc} }

func (h *ConfigHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Actualizar configuración (solo administradores)
// @Tags         configuracion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ConfigurationUpdate true "Configuración"
// @Success      200  {object} dto.ConfigurationResponse
// @Router       /v1/config [put]
func (h *ConfigHandler) Update(c *gin.Context) {
	var req dto.ConfigurationUpdate
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
