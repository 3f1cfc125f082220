// File: handlers/contact.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"campuscare/models"
	"campuscare/services/contact"

	"github.com/gin-gonic/gin"
)

// ContactHandler exposes the contact form.
type ContactHandler struct {
	Service contact.ContactService
}

// NewContactHandler constructs the contact handler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	msg.UserID = currentUserID(c)

	if err := h.Service.Submit(c.Request.Context(), &msg); err != nil {
		var vErr *contact.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "received", "message": "Thank you for reaching out. We will get back to you within one working day."})
}

func (h *ContactHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	msgs, err := h.Service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
