package backend

import (
	"context"
	"net/http"

	"darimaids/models"
)

// ListCatalogs fetches the service catalog.
func (c *Client) ListCatalogs(ctx context.Context) (*models.Catalog, error) {
	var resp models.Catalog
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/v1/catalog/displayAllCatalogs",
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Catalogs == nil {
		resp.Catalogs = []models.CatalogItem{}
	}
	if resp.Count == 0 {
		resp.Count = len(resp.Catalogs)
	}
	return &resp, nil
}
