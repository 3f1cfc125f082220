// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"campuscare/services/booking"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static service and counselor catalogs.
type CatalogHandler struct {
	Catalog *booking.Catalog
}

// NewCatalogHandler constructs the catalog handler.
func NewCatalogHandler(catalog *booking.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.Services()})
}

func (h *CatalogHandler) ListCounselors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"counselors": h.Catalog.Counselors()})
}
