// File: handlers/resources.go
package handlers

import (
	"net/http"

	"campuscare/services/resources"

	"github.com/gin-gonic/gin"
)

// ResourceHandler exposes the wellness resource library.
type ResourceHandler struct {
	Service resources.ResourceService
}

// NewResourceHandler constructs the resource handler.
func NewResourceHandler(svc resources.ResourceService) *ResourceHandler {
	return &ResourceHandler{Service: svc}
}

func (h *ResourceHandler) List(c *gin.Context) {
	list := h.Service.List(c.Query("category"), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"resources": list})
}

func (h *ResourceHandler) Get(c *gin.Context) {
	r, err := h.Service.Get(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ResourceHandler) TrackStart(c *gin.Context) {
	if err := h.Service.TrackStart(c.Request.Context(), currentUserID(c), c.Param("key")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

func (h *ResourceHandler) Save(c *gin.Context) {
	if err := h.Service.Save(c.Request.Context(), currentUserID(c), c.Param("key")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *ResourceHandler) ListSaved(c *gin.Context) {
	saved, err := h.Service.ListSaved(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list saved resources", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": saved})
}
