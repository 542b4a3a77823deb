package handlers

import (
	"context"
	"net/http"

	"darimaids/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogLister serves the service catalog.
type CatalogLister interface {
	List(ctx context.Context) (*catalog.View, error)
}

type CatalogHandler struct {
	Catalog CatalogLister
}

func NewCatalogHandler(lister CatalogLister) *CatalogHandler {
	return &CatalogHandler{Catalog: lister}
}

func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	view, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
