package store

import (
	"time"

	"github.com/shopspring/decimal"

	"techstore-admin/models"
)

var seededAt = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// bestSelling is the curated dashboard set. It is also the default collection.
var bestSelling = []models.Product{
	{
		ID:          "prod-1001",
		Name:        "MacBook Pro 16",
		Brand:       "Apple",
		Model:       "M2 Max",
		Category:    models.CategoryLaptops,
		Description: "Powerful laptop with Liquid Retina XDR display and M2 Max chip",
		Price:       decimal.RequireFromString("2499"),
		Image:       "/images/products/macbook.jpg",
		Stock:       15,
		Rating:      4.8,
		ReleaseDate: "2023-01-24",
		Specifications: models.Specifications{
			"processor": models.Text("Apple M2 Max"),
			"ram":       models.Text("32GB"),
			"storage":   models.Text("1TB SSD"),
			"display":   models.Text(`16.2" Liquid Retina XDR`),
			"color":     models.Text("Space Gray"),
		},
	},
	{
		ID:          "prod-1002",
		Name:        "Samsung Galaxy S23 Ultra",
		Brand:       "Samsung",
		Model:       "S23 Ultra",
		Category:    models.CategorySmartphones,
		Description: "Smartphone with 200MP camera and integrated S Pen",
		Price:       decimal.RequireFromString("1199"),
		Image:       "/images/products/samsunggalaxy.jpg",
		Stock:       25,
		Rating:      4.7,
		ReleaseDate: "2023-02-17",
		Specifications: models.Specifications{
			"processor": models.Text("Snapdragon 8 Gen 2"),
			"ram":       models.Text("12GB"),
			"storage":   models.Text("256GB"),
			"display":   models.Text(`6.8" Dynamic AMOLED 2X`),
			"camera":    models.Text("200MP + 12MP + 10MP + 10MP"),
		},
	},
	{
		ID:          "prod-1003",
		Name:        "Sony WH-1000XM5",
		Brand:       "Sony",
		Model:       "WH-1000XM5",
		Category:    models.CategoryHeadphones,
		Description: "Wireless headphones with industry-leading noise cancellation",
		Price:       decimal.RequireFromString("399"),
		Image:       "/images/products/sonywh.jpg",
		Stock:       30,
		Rating:      4.8,
		ReleaseDate: "2022-05-20",
		Specifications: models.Specifications{
			"type":              models.Text("Wireless"),
			"noiseCancellation": models.Text("Yes"),
			"batteryLife":       models.Text("30 hours"),
			"connectivity":      models.Text("Bluetooth 5.2"),
		},
	},
	{
		ID:          "prod-1004",
		Name:        "Apple Watch Series 8",
		Brand:       "Apple",
		Model:       "Series 8",
		Category:    models.CategorySmartwatches,
		Description: "The most advanced watch for a healthy lifestyle",
		Price:       decimal.RequireFromString("429"),
		Image:       "/images/products/applewatch.jpg",
		Stock:       20,
		Rating:      4.6,
		ReleaseDate: "2022-09-16",
		Specifications: models.Specifications{
			"display":        models.Text("Always-On Retina"),
			"batteryLife":    models.Text("18 hours"),
			"waterResistant": models.Text("50m"),
			"connectivity":   models.Text("GPS + Cellular"),
		},
	},
	{
		ID:          "prod-1005",
		Name:        `iPad Pro 12.9"`,
		Brand:       "Apple",
		Model:       `iPad Pro 12.9" M2`,
		Category:    models.CategoryTablets,
		Description: "Powerful tablet with Liquid Retina XDR display",
		Price:       decimal.RequireFromString("1099"),
		Image:       "/images/products/ipadpro.jpg",
		Stock:       18,
		Rating:      4.7,
		ReleaseDate: "2022-10-26",
		Specifications: models.Specifications{
			"processor":    models.Text("Apple M2"),
			"display":      models.Text(`12.9" Liquid Retina XDR`),
			"storage":      models.Text("256GB"),
			"connectivity": models.Text("WiFi + 5G"),
		},
	},
	{
		ID:          "prod-1006",
		Name:        "Logitech MX Master 3S",
		Brand:       "Logitech",
		Model:       "MX Master 3S",
		Category:    models.CategoryAccessories,
		Description: "Advanced wireless mouse for productivity",
		Price:       decimal.RequireFromString("99"),
		Image:       "/images/products/logitechmx.jpg",
		Stock:       35,
		Rating:      4.8,
		ReleaseDate: "2022-05-24",
		Specifications: models.Specifications{
			"type":         models.Text("Wireless"),
			"connectivity": models.Text("Bluetooth / USB Receiver"),
			"dpi":          models.Text("8000"),
			"buttons":      models.Text("7 programmable"),
		},
	},
}

// BestSellingCount is the fixed size of the dashboard set.
const BestSellingCount = 6

// DefaultCatalog returns a fresh copy of the curated best-selling products.
func DefaultCatalog() []models.Product {
	out := make([]models.Product, len(bestSelling))
	for i, p := range bestSelling {
		p = p.Clone()
		p.CreatedAt = seededAt
		p.UpdatedAt = seededAt
		out[i] = p
	}
	return out
}
