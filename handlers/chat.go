// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"campuscare/services/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the support chat widget.
type ChatHandler struct {
	Service chat.ChatService
}

// NewChatHandler constructs the chat handler.
func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

func (h *ChatHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"online": h.Service.IsOnline(time.Now())})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var input struct {
		ConversationID string `json:"conversationId"`
		Message        string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reply, err := h.Service.SendMessage(c.Request.Context(), input.ConversationID, currentUserID(c), input.Message)
	if err != nil {
		if errors.Is(err, chat.ErrChatOffline) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Chat support is offline. We are available weekdays 9:00 AM to 6:00 PM — please leave a message through the Contact page.",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) History(c *gin.Context) {
	msgs, err := h.Service.History(c.Request.Context(), c.Param("conversationID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch conversation", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
