package model

// SortKey enumerates the supported result orderings.
type SortKey string

const (
	SortRecent    SortKey = "recent"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortAreaDesc  SortKey = "area_desc"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortRecent, SortPriceAsc, SortPriceDesc, SortAreaDesc:
		return true
	}
	return false
}

// PropertyFilters represents the optional search constraints.
// A nil field imposes no restriction; present constraints compose with AND.
type PropertyFilters struct {
	Type      *PropertyType  `json:"type,omitempty"`
	Operation *OperationType `json:"operation,omitempty"`
	Location  *string        `json:"location,omitempty"`
	PriceMin  *float64       `json:"price_min,omitempty"`
	PriceMax  *float64       `json:"price_max,omitempty"`
	Rooms     *int           `json:"rooms,omitempty"`
	Bathrooms *int           `json:"baths,omitempty"`
	AreaMin   *float64       `json:"area_min,omitempty"`
	AreaMax   *float64       `json:"area_max,omitempty"`
	Featured  *bool          `json:"featured,omitempty"`
}

// ListQuery binds the query string of GET /properties.
type ListQuery struct {
	Type      *PropertyType  `form:"type"`
	Operation *OperationType `form:"operation"`
	Location  *string        `form:"location"`
	PriceMin  *float64       `form:"price_min" binding:"omitempty,gte=0"`
	PriceMax  *float64       `form:"price_max" binding:"omitempty,gte=0"`
	Rooms     *int           `form:"rooms" binding:"omitempty,gte=0"`
	Bathrooms *int           `form:"baths" binding:"omitempty,gte=0"`
	AreaMin   *float64       `form:"area_min" binding:"omitempty,gte=0"`
	AreaMax   *float64       `form:"area_max" binding:"omitempty,gte=0"`
	Featured  *bool          `form:"featured"`
	Page      int            `form:"page,default=1" binding:"gte=1"`
	PageSize  int            `form:"page_size,default=10" binding:"gte=1,lte=100"`
	Sort      SortKey        `form:"sort,default=recent" binding:"omitempty,oneof=recent price_asc price_desc area_desc"`
}

// Filters extracts the filter constraints from the bound query.
func (q *ListQuery) Filters() *PropertyFilters {
	return &PropertyFilters{
		Type:      q.Type,
		Operation: q.Operation,
		Location:  q.Location,
		PriceMin:  q.PriceMin,
		PriceMax:  q.PriceMax,
		Rooms:     q.Rooms,
		Bathrooms: q.Bathrooms,
		AreaMin:   q.AreaMin,
		AreaMax:   q.AreaMax,
		Featured:  q.Featured,
	}
}

// ListResponse represents a paginated property listing response.
type ListResponse struct {
	Properties []Property `json:"properties"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// FavoriteResponse acknowledges a favorite toggle. No favorite state is
// persisted in this deployment.
type FavoriteResponse struct {
	Message    string `json:"message"`
	PropertyID int    `json:"property_id"`
	UserID     string `json:"user_id"`
	IsFavorite bool   `json:"is_favorite"`
}
