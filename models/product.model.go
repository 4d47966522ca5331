package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the product category enum.
type Category string

const (
	CategoryLaptops      Category = "laptops"
	CategorySmartphones  Category = "smartphones"
	CategoryTablets      Category = "tablets"
	CategoryHeadphones   Category = "headphones"
	CategorySmartwatches Category = "smartwatches"
	CategoryAccessories  Category = "accessories"
)

// DefaultCategory is assigned when a product is created without a valid category.
const DefaultCategory = CategoryAccessories

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryLaptops,
	CategorySmartphones,
	CategoryTablets,
	CategoryHeadphones,
	CategorySmartwatches,
	CategoryAccessories,
}

var categoryLabels = map[Category]string{
	CategoryLaptops:      "Laptops",
	CategorySmartphones:  "Smartphones",
	CategoryTablets:      "Tablets",
	CategoryHeadphones:   "Headphones",
	CategorySmartwatches: "Smartwatches",
	CategoryAccessories:  "Accessories",
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human readable category name, or the raw value when unknown.
func (c Category) Label() string {
	if label, ok := categoryLabels[Category(strings.ToLower(string(c)))]; ok {
		return label
	}
	return string(c)
}

// Product is the canonical product record owned by the store.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Category       Category        `json:"category"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Color          string          `json:"color,omitempty"`
	Image          string          `json:"image"`
	Stock          int             `json:"stock"`
	Rating         float64         `json:"rating"`
	ReleaseDate    string          `json:"releaseDate,omitempty"`
	Specifications Specifications  `json:"specifications"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	p.Specifications = p.Specifications.Clone()
	return p
}

// SKU is derived from the id and never stored.
func (p Product) SKU() string {
	suffix := p.ID
	if _, after, found := strings.Cut(p.ID, "-"); found {
		suffix = after
	}
	return "TECH-PROD-" + suffix
}

// SerialNumber is derived from the id and never stored.
func (p Product) SerialNumber() string {
	compact := strings.ReplaceAll(p.ID, "-", "")
	if len(compact) > 17 {
		compact = compact[:17]
	}
	return "VIN" + strings.ToUpper(compact)
}

// DisplayColor returns the color field, falling back to the color specification
// and then to "Black".
func (p Product) DisplayColor() string {
	if p.Color != "" {
		return p.Color
	}
	if v, ok := p.Specifications["color"]; ok && v.String() != "" {
		return v.String()
	}
	return "Black"
}

// ProductInput carries the fields of a product to create. Nil fields take defaults.
type ProductInput struct {
	Name           *string
	Brand          *string
	Model          *string
	Category       *Category
	Description    *string
	Price          *decimal.Decimal
	Color          *string
	Image          *string
	Stock          *int
	Rating         *float64
	ReleaseDate    *string
	Specifications Specifications
}

// ProductPatch carries a partial update. Only non-nil fields are applied.
type ProductPatch struct {
	Name           *string
	Brand          *string
	Model          *string
	Category       *Category
	Description    *string
	Price          *decimal.Decimal
	Color          *string
	Image          *string
	Stock          *int
	Rating         *float64
	ReleaseDate    *string
	Specifications Specifications
}

// Summary is the pagination metadata of a list result.
type Summary struct {
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// Stats aggregates the catalog for the dashboard.
type Stats struct {
	TotalProducts  int              `json:"total_products"`
	TotalStock     int              `json:"total_stock"`
	InventoryValue decimal.Decimal  `json:"inventory_value"`
	ByCategory     map[Category]int `json:"by_category"`
}
