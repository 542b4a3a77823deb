package catalog

import (
	"context"
	"encoding/json"
	"time"

	"darimaids/models"
	"darimaids/utils"

	"go.uber.org/zap"
)

// Lister fetches the service catalog from the backend.
type Lister interface {
	ListCatalogs(ctx context.Context) (*models.Catalog, error)
}

// Entry is a catalog item with its price strings split for display.
type Entry struct {
	models.CatalogItem
	PriceList []models.CatalogPrice `json:"priceList"`
}

// View is the catalog as the site shows it.
type View struct {
	Count    int     `json:"count"`
	Catalogs []Entry `json:"catalogs"`
}

// Service serves the catalog from cache, refreshing from the backend
// when the cached copy is missing or expired.
type Service struct {
	lister Lister
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewService(lister Lister, cache Cache, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{lister: lister, cache: cache, ttl: ttl, logger: logger}
}

// List returns the catalog. Cache failures are logged and bypassed.
func (s *Service) List(ctx context.Context) (*View, error) {
	if data, ok, err := s.cache.Get(ctx, utils.CatalogCacheKey); err != nil {
		s.logger.Warn("Catalog cache read failed", zap.Error(err))
	} else if ok {
		var view View
		if err := json.Unmarshal(data, &view); err == nil {
			return &view, nil
		}
		s.logger.Warn("Discarding unreadable catalog cache entry")
	}

	catalog, err := s.lister.ListCatalogs(ctx)
	if err != nil {
		return nil, err
	}
	view := buildView(catalog)

	if data, err := json.Marshal(view); err == nil {
		if err := s.cache.Set(ctx, utils.CatalogCacheKey, data, s.ttl); err != nil {
			s.logger.Warn("Catalog cache write failed", zap.Error(err))
		}
	}
	return view, nil
}

// Invalidate drops the cached catalog.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, utils.CatalogCacheKey)
}

func buildView(c *models.Catalog) *View {
	view := &View{Catalogs: []Entry{}}
	if c == nil {
		return view
	}
	for _, item := range c.Catalogs {
		view.Catalogs = append(view.Catalogs, Entry{CatalogItem: item, PriceList: item.PriceList()})
	}
	view.Count = c.Count
	if view.Count == 0 {
		view.Count = len(view.Catalogs)
	}
	return view
}
