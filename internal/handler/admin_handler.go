package handler

import (
	"net/http"

	"digipasal-be/internal/order"
	"digipasal-be/internal/product"

	"github.com/gin-gonic/gin"
)

type adminHandler struct {
	productSvc product.Service
	orderSvc   order.Service
}

func newAdminHandler(productSvc product.Service, orderSvc order.Service) *adminHandler {
	return &adminHandler{productSvc: productSvc, orderSvc: orderSvc}
}

type createProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
}

func (h *adminHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.productSvc.Create(c.Request.Context(), product.NewProductInput{
		Title:       req.Title,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Description: req.Description,
		Rating:      req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

type updateProductRequest struct {
	Title       *string  `json:"title"`
	Price       *int64   `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating"`
}

func (h *adminHandler) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.productSvc.Update(c.Request.Context(), product.UpdateProductInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Description: req.Description,
		Rating:      req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *adminHandler) DeleteProduct(c *gin.Context) {
	if err := h.productSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus is the operator-side transition that drives the
// customer's delivery timeline.
func (h *adminHandler) UpdateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderSvc.UpdateStatus(c.Request.Context(), c.Param("id"), order.Status(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
