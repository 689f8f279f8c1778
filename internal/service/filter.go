package service

import (
	"math"
	"sort"

	"inmomax/internal/model"
	"inmomax/internal/utils"
)

// Filter returns the subset of props satisfying every present constraint.
// Absent fields impose no restriction; constraints compose with AND and are
// order-independent. The input slice is never mutated.
func Filter(props []model.Property, filters *model.PropertyFilters) []model.Property {
	result := make([]model.Property, 0, len(props))
	if filters == nil {
		return append(result, props...)
	}

	for _, p := range props {
		if filters.Type != nil && p.Type != *filters.Type {
			continue
		}
		if filters.Operation != nil && p.Operation != *filters.Operation {
			continue
		}
		if filters.Location != nil && !utils.ContainsFold(p.Location, *filters.Location) {
			continue
		}
		if filters.PriceMin != nil && p.Price < *filters.PriceMin {
			continue
		}
		if filters.PriceMax != nil && p.Price > *filters.PriceMax {
			continue
		}
		if filters.Rooms != nil && p.Rooms < *filters.Rooms {
			continue
		}
		if filters.Bathrooms != nil && p.Bathrooms < *filters.Bathrooms {
			continue
		}
		if filters.AreaMin != nil && p.Area < *filters.AreaMin {
			continue
		}
		if filters.AreaMax != nil && p.Area > *filters.AreaMax {
			continue
		}
		if filters.Featured != nil && p.Featured != *filters.Featured {
			continue
		}
		result = append(result, p)
	}

	return result
}

// Sort returns a new slice ordered by the given key. The sort is stable so
// equal keys keep their input order, which keeps pagination reproducible
// across requests on unmodified data.
func Sort(props []model.Property, key model.SortKey) []model.Property {
	sorted := make([]model.Property, len(props))
	copy(sorted, props)

	switch key {
	case model.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case model.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case model.SortAreaDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Area > sorted[j].Area
		})
	default: // recent
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
		})
	}

	return sorted
}

// Paginate slices the ordered sequence for the given 1-based page and page
// size, clipping to bounds. An out-of-range page yields an empty slice. It
// returns the page, the total element count and the total page count
// (ceil(total/size), 0 when the sequence is empty). Page and size are
// validated at the HTTP boundary and not re-checked here.
func Paginate(props []model.Property, page, size int) ([]model.Property, int, int) {
	total := len(props)

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(size)))
	}

	start := (page - 1) * size
	if start >= total {
		return []model.Property{}, total, totalPages
	}
	end := start + size
	if end > total {
		end = total
	}

	return props[start:end], total, totalPages
}
