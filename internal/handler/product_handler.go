package handler

import (
	"net/http"

	"digipasal-be/internal/product"

	"github.com/gin-gonic/gin"
)

type productHandler struct {
	svc product.Service
}

func newProductHandler(svc product.Service) *productHandler {
	return &productHandler{svc: svc}
}

// List serves catalog search: ?q= filters, ?sort= orders. Unknown sort
// values fall through to the default ordering.
func (h *productHandler) List(c *gin.Context) {
	q := c.Query("q")
	mode := product.SortMode(c.DefaultQuery("sort", string(product.SortDefault)))

	results := h.svc.Search(c.Request.Context(), q, mode)
	c.JSON(http.StatusOK, gin.H{
		"products": results,
		"count":    len(results),
	})
}

func (h *productHandler) GetBySlug(c *gin.Context) {
	p, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
