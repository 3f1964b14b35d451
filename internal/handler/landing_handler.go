package handler

import (
	"net/http"

	"digipasal-be/internal/landing"

	"github.com/gin-gonic/gin"
)

type landingHandler struct{}

func newLandingHandler() *landingHandler {
	return &landingHandler{}
}

func (h *landingHandler) List(c *gin.Context) {
	pages := landing.All()
	c.JSON(http.StatusOK, gin.H{
		"pages": pages,
		"count": len(pages),
	})
}

func (h *landingHandler) GetBySlug(c *gin.Context) {
	page, ok := landing.BySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "landing page not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}
