package store

import (
	"context"

	"techstore-admin/models"
)

var chartMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

var chartCategories = []models.Category{
	models.CategoryLaptops,
	models.CategorySmartphones,
	models.CategoryHeadphones,
	models.CategorySmartwatches,
}

// inventoryScale multiplies each category count in the inventory series.
const inventoryScale = 10

const (
	minSales = 1000
	maxSales = 10000
)

// ChartData builds the dashboard series. Sales figures are synthetic; the
// inventory series is computed from the stored collection.
func (s *Store) ChartData(ctx context.Context) models.Charts {
	_, span := tracer.Start(ctx, "store.chart_data")
	defer span.End()

	// the random source is not safe for concurrent use, so take the write lock
	s.mu.Lock()
	defer s.mu.Unlock()

	sales := make([]models.SalesPoint, 0, len(chartMonths))
	for _, month := range chartMonths {
		sales = append(sales, models.SalesPoint{
			Month:        month,
			Laptops:      s.salesFigure(),
			Smartphones:  s.salesFigure(),
			Headphones:   s.salesFigure(),
			Smartwatches: s.salesFigure(),
		})
	}

	counts := make(map[models.Category]int)
	for _, p := range s.products {
		counts[p.Category]++
	}
	inventory := make([]models.InventoryPoint, 0, len(chartCategories))
	for _, c := range chartCategories {
		inventory = append(inventory, models.InventoryPoint{Category: c, Value: counts[c] * inventoryScale})
	}

	return models.Charts{Sales: sales, Inventory: inventory}
}

func (s *Store) salesFigure() int {
	return minSales + s.rnd.IntN(maxSales-minSales+1)
}

// Stats summarises the stored collection.
func (s *Store) Stats(ctx context.Context) models.Stats {
	_, span := tracer.Start(ctx, "store.stats")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.Stats{
		TotalProducts:  len(s.products),
		InventoryValue: inventoryValue(s.products),
		ByCategory:     make(map[models.Category]int, len(models.Categories)),
	}
	for _, c := range models.Categories {
		stats.ByCategory[c] = 0
	}
	for _, p := range s.products {
		stats.TotalStock += p.Stock
		stats.ByCategory[p.Category]++
	}
	return stats
}
