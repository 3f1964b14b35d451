package handler

import (
	"net/http"

	"digipasal-be/internal/cart"
	"digipasal-be/internal/middleware"
	"digipasal-be/internal/product"

	"github.com/gin-gonic/gin"
)

type cartHandler struct {
	svc        cart.Service
	productSvc product.Service
}

func newCartHandler(svc cart.Service, productSvc product.Service) *cartHandler {
	return &cartHandler{svc: svc, productSvc: productSvc}
}

type cartResponse struct {
	Items []cart.LineItem `json:"items"`
	Total int64           `json:"total"`
}

func newCartResponse(items []cart.LineItem) cartResponse {
	if items == nil {
		items = []cart.LineItem{}
	}
	return cartResponse{Items: items, Total: cart.Total(items)}
}

func (h *cartHandler) Get(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	items, err := h.svc.Get(c.Request.Context(), u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(items))
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Add puts a product in the cart with quantity 1. Re-adding an already
// present product returns the unchanged cart.
func (h *cartHandler) Add(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, _ := middleware.CurrentUser(c)

	p, err := h.productSvc.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.svc.Add(c.Request.Context(), u.ID, *p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(items))
}

type setQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *cartHandler) SetQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, _ := middleware.CurrentUser(c)

	items, err := h.svc.SetQuantity(c.Request.Context(), u.ID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(items))
}

func (h *cartHandler) Remove(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	items, err := h.svc.Remove(c.Request.Context(), u.ID, c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(items))
}

func (h *cartHandler) Clear(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	if err := h.svc.Clear(c.Request.Context(), u.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(nil))
}
