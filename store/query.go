package store

import (
	"strings"

	"github.com/shopspring/decimal"

	"techstore-admin/models"
)

// filter keeps the products whose name, brand or model contains query,
// ignoring case. An empty query keeps everything.
func filter(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Model), q) {
			out = append(out, p)
		}
	}
	return out
}

func paginate(products []models.Product, page, pageSize int) ([]models.Product, models.Summary) {
	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if page > totalPages && totalPages > 0 {
		page = 1
	}

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	return products[start:end], models.Summary{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

func applyInput(p *models.Product, in models.ProductInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.Model != nil {
		p.Model = *in.Model
	}
	if in.Category != nil && in.Category.Valid() {
		p.Category = *in.Category
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil && !in.Price.IsNegative() {
		p.Price = *in.Price
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Stock != nil {
		p.Stock = max(*in.Stock, 0)
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.ReleaseDate != nil && *in.ReleaseDate != "" {
		p.ReleaseDate = *in.ReleaseDate
	}
	if in.Specifications != nil {
		p.Specifications = in.Specifications.Clone()
	}
}

// applyPatch reports whether anything changed.
func applyPatch(p *models.Product, patch models.ProductPatch) bool {
	changed := false
	setString := func(dst *string, src *string) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = true
		}
	}

	setString(&p.Name, patch.Name)
	setString(&p.Brand, patch.Brand)
	setString(&p.Model, patch.Model)
	setString(&p.Description, patch.Description)
	setString(&p.Color, patch.Color)
	setString(&p.Image, patch.Image)
	setString(&p.ReleaseDate, patch.ReleaseDate)

	if patch.Category != nil && patch.Category.Valid() && p.Category != *patch.Category {
		p.Category = *patch.Category
		changed = true
	}
	if patch.Price != nil && !patch.Price.IsNegative() && !p.Price.Equal(*patch.Price) {
		p.Price = *patch.Price
		changed = true
	}
	if patch.Stock != nil {
		if stock := max(*patch.Stock, 0); stock != p.Stock {
			p.Stock = stock
			changed = true
		}
	}
	if patch.Rating != nil && p.Rating != *patch.Rating {
		p.Rating = *patch.Rating
		changed = true
	}
	if patch.Specifications != nil {
		p.Specifications = patch.Specifications.Clone()
		changed = true
	}
	return changed
}

// inventoryValue is the sum of price × stock.
func inventoryValue(products []models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}
