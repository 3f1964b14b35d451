package handler

import (
	"net/http"

	"digipasal-be/internal/notify"

	"github.com/gin-gonic/gin"
)

type contactHandler struct {
	notifier *notify.Client
}

func newContactHandler(notifier *notify.Client) *contactHandler {
	return &contactHandler{notifier: notifier}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Submit relays a contact/review form: one admin notification plus one
// customer auto-reply. Nothing is stored.
func (h *contactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.notifier.SendContact(c.Request.Context(), notify.FormMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "message could not be delivered"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}
