package store

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"techstore-admin/models"
)

type template struct {
	brand    string
	names    []string
	minPrice int
	maxPrice int
	specs    func(r *rand.Rand) models.Specifications
}

var templates = map[models.Category][]template{
	models.CategoryLaptops: {
		{brand: "Dell", names: []string{"XPS 13", "XPS 15", "Latitude 7440"}, minPrice: 899, maxPrice: 2399, specs: computerSpecs},
		{brand: "Lenovo", names: []string{"ThinkPad X1 Carbon", "Yoga Slim 7", "Legion 5"}, minPrice: 799, maxPrice: 2199, specs: computerSpecs},
		{brand: "ASUS", names: []string{"Zenbook 14", "ROG Zephyrus G14"}, minPrice: 899, maxPrice: 1999, specs: computerSpecs},
	},
	models.CategorySmartphones: {
		{brand: "Google", names: []string{"Pixel 8", "Pixel 8 Pro", "Pixel 7a"}, minPrice: 499, maxPrice: 999, specs: phoneSpecs},
		{brand: "Xiaomi", names: []string{"13T Pro", "Redmi Note 12"}, minPrice: 249, maxPrice: 799, specs: phoneSpecs},
		{brand: "OnePlus", names: []string{"11", "Nord 3"}, minPrice: 399, maxPrice: 899, specs: phoneSpecs},
	},
	models.CategoryTablets: {
		{brand: "Samsung", names: []string{"Galaxy Tab S9", "Galaxy Tab A8"}, minPrice: 229, maxPrice: 1199, specs: tabletSpecs},
		{brand: "Microsoft", names: []string{"Surface Pro 9", "Surface Go 3"}, minPrice: 399, maxPrice: 1599, specs: tabletSpecs},
	},
	models.CategoryHeadphones: {
		{brand: "Bose", names: []string{"QuietComfort 45", "QuietComfort Earbuds II"}, minPrice: 199, maxPrice: 379, specs: audioSpecs},
		{brand: "Sennheiser", names: []string{"Momentum 4", "HD 660S2"}, minPrice: 249, maxPrice: 599, specs: audioSpecs},
	},
	models.CategorySmartwatches: {
		{brand: "Garmin", names: []string{"Fenix 7", "Venu 2 Plus", "Forerunner 265"}, minPrice: 299, maxPrice: 899, specs: watchSpecs},
		{brand: "Samsung", names: []string{"Galaxy Watch 6", "Galaxy Watch 6 Classic"}, minPrice: 249, maxPrice: 499, specs: watchSpecs},
	},
	models.CategoryAccessories: {
		{brand: "Anker", names: []string{"PowerCore 20000", "737 Charger"}, minPrice: 29, maxPrice: 149, specs: accessorySpecs},
		{brand: "Keychron", names: []string{"K2 Pro", "Q1 Max"}, minPrice: 89, maxPrice: 229, specs: accessorySpecs},
	},
}

var colors = []string{"Black", "Silver", "Space Gray", "White", "Midnight Blue", "Graphite"}

// Generate builds n demo products with ids starting at prod-<firstID>. The output
// depends only on its arguments.
func Generate(seed int64, n, firstID int) []models.Product {
	r := rand.New(rand.NewPCG(uint64(seed), 0x5eed))

	out := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		category := models.Categories[r.IntN(len(models.Categories))]
		options := templates[category]
		tpl := options[r.IntN(len(options))]
		name := tpl.names[r.IntN(len(tpl.names))]

		cents := (tpl.minPrice + r.IntN(tpl.maxPrice-tpl.minPrice+1)) * 100
		released := seededAt.AddDate(0, 0, -r.IntN(3*365))

		specs := tpl.specs(r)
		specs["color"] = models.Text(colors[r.IntN(len(colors))])

		out = append(out, models.Product{
			ID:             fmt.Sprintf("prod-%d", firstID+i),
			Name:           tpl.brand + " " + name,
			Brand:          tpl.brand,
			Model:          name,
			Category:       category,
			Description:    fmt.Sprintf("%s %s from the %s range", tpl.brand, name, category.Label()),
			Price:          decimal.New(int64(cents-1), -2),
			Stock:          r.IntN(60),
			Rating:         float64(30+r.IntN(21)) / 10,
			ReleaseDate:    released.Format(time.DateOnly),
			Specifications: specs,
			CreatedAt:      seededAt,
			UpdatedAt:      seededAt,
		})
	}
	return out
}

func pick(r *rand.Rand, values ...string) string {
	return values[r.IntN(len(values))]
}

func computerSpecs(r *rand.Rand) models.Specifications {
	return models.Specifications{
		"ram":             models.Text(pick(r, "8GB", "16GB", "32GB")),
		"storage":         models.Text(pick(r, "256GB SSD", "512GB SSD", "1TB SSD")),
		"screenSize":      models.Text(pick(r, `13.3"`, `14"`, `15.6"`)),
		"operatingSystem": models.Text(pick(r, "Windows 11", "Ubuntu 22.04")),
	}
}

func phoneSpecs(r *rand.Rand) models.Specifications {
	return models.Specifications{
		"ram":      models.Text(pick(r, "6GB", "8GB", "12GB")),
		"storage":  models.Text(pick(r, "128GB", "256GB", "512GB")),
		"features": models.List("5G", pick(r, "NFC", "eSIM"), pick(r, "Wireless charging", "Fast charging")),
	}
}

func tabletSpecs(r *rand.Rand) models.Specifications {
	return models.Specifications{
		"storage":    models.Text(pick(r, "64GB", "128GB", "256GB")),
		"screenSize": models.Text(pick(r, `10.5"`, `11"`, `12.4"`)),
	}
}

func audioSpecs(r *rand.Rand) models.Specifications {
	return models.Specifications{
		"wireless":    models.Text(pick(r, "Yes", "No")),
		"batteryLife": models.Text(pick(r, "20 hours", "24 hours", "60 hours")),
	}
}

func watchSpecs(r *rand.Rand) models.Specifications {
	return models.Specifications{
		"batteryLife":    models.Text(pick(r, "2 days", "7 days", "14 days")),
		"waterResistant": models.Text(pick(r, "50m", "100m")),
		"features":       models.List("GPS", "Heart rate", pick(r, "ECG", "SpO2")),
	}
}

func accessorySpecs(r *rand.Rand) models.Specifications {
	return models.Specifications{
		"connectivity": models.Text(pick(r, "USB-C", "Bluetooth", "Bluetooth / USB Receiver")),
	}
}
