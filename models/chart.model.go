package models

// SalesPoint is one month of synthetic sales per charted category.
type SalesPoint struct {
	Month        string `json:"month"`
	Laptops      int    `json:"laptops"`
	Smartphones  int    `json:"smartphones"`
	Headphones   int    `json:"headphones"`
	Smartwatches int    `json:"smartwatches"`
}

// InventoryPoint is the scaled product count of one category.
type InventoryPoint struct {
	Category Category `json:"category"`
	Value    int      `json:"value"`
}

// Charts holds both dashboard series.
type Charts struct {
	Sales     []SalesPoint
	Inventory []InventoryPoint
}

// ChartDataset is the wire form of one series.
type ChartDataset struct {
	ID   string `json:"id"`
	Data any    `json:"data"`
}

// Datasets renders the charts in the order the dashboard expects.
func (c Charts) Datasets() []ChartDataset {
	return []ChartDataset{
		{ID: "sales", Data: c.Sales},
		{ID: "inventory", Data: c.Inventory},
	}
}
