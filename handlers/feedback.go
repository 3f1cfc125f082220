// File: handlers/feedback.go
package handlers

import (
	"net/http"
	"strconv"

	"campuscare/models"
	"campuscare/services/feedback"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler exposes the feedback board.
type FeedbackHandler struct {
	Service feedback.FeedbackService
}

// NewFeedbackHandler constructs the feedback handler.
func NewFeedbackHandler(svc feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: svc}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	fb.UserID = currentUserID(c)

	if err := h.Service.Submit(c.Request.Context(), &fb); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "received", "message": "Thank you for your feedback!"})
}

func (h *FeedbackHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	entries, err := h.Service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": entries})
}
