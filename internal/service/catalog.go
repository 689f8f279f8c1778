package service

import (
	"time"

	"inmomax/internal/config"
	"inmomax/internal/model"
	"inmomax/internal/store"
)

// Catalog handles property listing business logic on top of the store.
type Catalog struct {
	store *store.Memory
	cfg   config.CatalogConfig
}

// NewCatalog creates a new catalog service.
func NewCatalog(st *store.Memory, cfg config.CatalogConfig) *Catalog {
	return &Catalog{
		store: st,
		cfg:   cfg,
	}
}

// Search runs the filter → sort → paginate pipeline over the full collection.
func (c *Catalog) Search(filters *model.PropertyFilters, sortKey model.SortKey, page, pageSize int) *model.ListResponse {
	filtered := Filter(c.store.List(), filters)
	ordered := Sort(filtered, sortKey)
	pageItems, total, totalPages := Paginate(ordered, page, pageSize)

	return &model.ListResponse{
		Properties: pageItems,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Get returns a single property and counts the visit as a view.
func (c *Catalog) Get(id int) (model.Property, error) {
	return c.store.GetAndCountView(id)
}

// Exists returns the property without touching its view counter.
func (c *Catalog) Exists(id int) (model.Property, error) {
	return c.store.Get(id)
}

// Create adds a new property to the portfolio.
func (c *Catalog) Create(input *model.PropertyInput) model.Property {
	return c.store.Create(input, time.Now())
}

// Update replaces the mutable fields of an existing property.
func (c *Catalog) Update(id int, input *model.PropertyInput) (model.Property, error) {
	return c.store.Update(id, input, time.Now())
}

// Delete soft-deletes a property, keeping the record as inactive.
func (c *Catalog) Delete(id int) error {
	return c.store.SoftDelete(id, time.Now())
}

// SimilarLimit clamps the requested limit to the configured bounds, falling
// back to the configured default when limit is not positive.
func (c *Catalog) SimilarLimit(limit int) int {
	if limit <= 0 {
		return c.cfg.SimilarDefault
	}
	if limit > c.cfg.SimilarMax {
		return c.cfg.SimilarMax
	}
	return limit
}

// Similar finds other available properties with the same type and operation
// as the reference and a price within ±30% of it, inclusive. Results come
// back in store order, capped at limit.
func (c *Catalog) Similar(id, limit int) ([]model.Property, error) {
	ref, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}

	priceMin := ref.Price * 0.7
	priceMax := ref.Price * 1.3

	similar := make([]model.Property, 0, limit)
	for _, p := range c.store.List() {
		if p.ID == ref.ID {
			continue
		}
		if p.Status != model.StatusAvailable {
			continue
		}
		if p.Type != ref.Type || p.Operation != ref.Operation {
			continue
		}
		if p.Price < priceMin || p.Price > priceMax {
			continue
		}
		similar = append(similar, p)
		if len(similar) == limit {
			break
		}
	}

	return similar, nil
}

// Stats aggregates counts and the mean price over available properties.
func (c *Catalog) Stats() *model.PropertyStats {
	stats := &model.PropertyStats{
		ByType:      make(map[model.PropertyType]int),
		ByOperation: make(map[model.OperationType]int),
	}

	var priceSum float64
	for _, p := range c.store.List() {
		if p.Status != model.StatusAvailable {
			continue
		}
		stats.TotalProperties++
		stats.ByType[p.Type]++
		stats.ByOperation[p.Operation]++
		priceSum += p.Price
		if p.Featured {
			stats.FeaturedCount++
		}
	}

	if stats.TotalProperties > 0 {
		stats.AveragePrice = priceSum / float64(stats.TotalProperties)
	}

	return stats
}
