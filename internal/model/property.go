package model

import "time"

// PropertyType enumerates the kinds of properties the agency lists.
type PropertyType string

const (
	TypeHouse        PropertyType = "house"
	TypeApartment    PropertyType = "apartment"
	TypeCommercial   PropertyType = "commercial"
	TypeLand         PropertyType = "land"
	TypeOffice       PropertyType = "office"
	TypeCountryHouse PropertyType = "country_house"
)

// Valid reports whether t is a known property type.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeHouse, TypeApartment, TypeCommercial, TypeLand, TypeOffice, TypeCountryHouse:
		return true
	}
	return false
}

// OperationType enumerates the commercial operations offered for a property.
type OperationType string

const (
	OperationSale          OperationType = "sale"
	OperationRent          OperationType = "rent"
	OperationTemporaryRent OperationType = "temporary_rent"
)

// Valid reports whether o is a known operation type.
func (o OperationType) Valid() bool {
	switch o {
	case OperationSale, OperationRent, OperationTemporaryRent:
		return true
	}
	return false
}

// PropertyStatus enumerates the lifecycle states of a listing.
// Soft-delete moves a property to StatusInactive; nothing moves it back.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusReserved  PropertyStatus = "reserved"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
	StatusInactive  PropertyStatus = "inactive"
)

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// Agent represents the real-estate agent attached to a listing.
// The current deployment attaches one shared agent to every property.
type Agent struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Avatar *string `json:"avatar,omitempty"`
}

// Property represents a full listing as stored and served.
type Property struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	Location       string         `json:"location"`
	Address        *string        `json:"address,omitempty"`
	Type           PropertyType   `json:"type"`
	Operation      OperationType  `json:"operation"`
	Rooms          int            `json:"rooms"`
	Bathrooms      int            `json:"bathrooms"`
	Area           float64        `json:"area"`
	LotArea        *float64       `json:"lot_area,omitempty"`
	Age            *int           `json:"age,omitempty"`
	MaintenanceFee *float64       `json:"maintenance_fee,omitempty"`
	Features       []string       `json:"features"`
	Services       []string       `json:"services"`
	Images         []string       `json:"images"`
	Coordinates    *Coordinates   `json:"coordinates,omitempty"`
	Status         PropertyStatus `json:"status"`
	Featured       bool           `json:"featured"`
	PublishedAt    time.Time      `json:"published_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
	Agent          Agent          `json:"agent"`
	Views          int            `json:"views"`
}

// PropertyInput is the payload accepted for create and update operations.
// Identity, status, featured flag, timestamps and the view counter are
// owned by the store and never client-supplied.
type PropertyInput struct {
	Title          string        `json:"title" binding:"required" validate:"min=10,max=200"`
	Description    string        `json:"description" binding:"required" validate:"min=50,max=2000"`
	Price          float64       `json:"price" binding:"required" validate:"gt=0"`
	Location       string        `json:"location" binding:"required" validate:"min=5,max=200"`
	Address        *string       `json:"address,omitempty" validate:"omitempty,max=300"`
	Type           PropertyType  `json:"type" binding:"required"`
	Operation      OperationType `json:"operation" binding:"required"`
	Rooms          int           `json:"rooms" validate:"gte=0,lte=20"`
	Bathrooms      int           `json:"bathrooms" validate:"gte=0,lte=10"`
	Area           float64       `json:"area" binding:"required" validate:"gt=0,lte=10000"`
	LotArea        *float64      `json:"lot_area,omitempty" validate:"omitempty,gt=0,lte=50000"`
	Age            *int          `json:"age,omitempty" validate:"omitempty,gte=0,lte=200"`
	MaintenanceFee *float64      `json:"maintenance_fee,omitempty" validate:"omitempty,gte=0"`
	Features       []string      `json:"features"`
	Services       []string      `json:"services"`
	Images         []string      `json:"images"`
	Coordinates    *Coordinates  `json:"coordinates,omitempty"`
	AgentID        int           `json:"agent_id" binding:"required"`
}

// PropertyStats aggregates counts over available properties.
type PropertyStats struct {
	TotalProperties int                   `json:"total_properties"`
	ByType          map[PropertyType]int  `json:"by_type"`
	ByOperation     map[OperationType]int `json:"by_operation"`
	AveragePrice    float64               `json:"average_price"`
	FeaturedCount   int                   `json:"featured_count"`
}
