package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kioskopos/internal/dto"
	"kioskopos/internal/service"
)

type CartHandler struct{ svc service.CartService }

func NewCartHandler(svc service.CartService) *CartHandler { return &CartHandler{svc: svc} }

// Get godoc
// @Summary      Ver carrito actual
// @Tags         carrito
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.CartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add godoc
// @Summary      Agregar una unidad al carrito
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CartAddRequest true "Producto"
// @Success      200  {object} dto.CartResponse
// @Failure      409  {object} apierror.APIError "Stock insuficiente"
// @Router       /v1/cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Add(c.Request.Context(), currentUserID(c), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una línea (0 la elimina)
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId path string                  true "UUID del producto"
// @Param        body      body dto.CartQuantityRequest true "Cantidad absoluta"
// @Success      200  {object} dto.CartResponse
// @Failure      409  {object} apierror.APIError "Stock insuficiente"
// @Router       /v1/cart/items/{productId}/quantity [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return
	}
	var req dto.CartQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateQuantity(c.Request.Context(), currentUserID(c), productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePrice godoc
// @Summary      Modificar precio de una línea
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId path string               true "UUID del producto"
// @Param        body      body dto.CartPriceRequest true "Precio unitario"
// @Success      200  {object} dto.CartResponse
// @Router       /v1/cart/items/{productId}/price [put]
func (h *CartHandler) UpdatePrice(c *gin.Context) {
	productID, ok := pathUUID(c, "productId")
	if !ok {
		return
	}
	var req dto.CartPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdatePrice(c.Request.Context(), currentUserID(c), productID, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         carrito
// @Security     BearerAuth
// @Success      204
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
