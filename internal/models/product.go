package models

import "math"

// Stock status labels shown in the warehouse table.
const (
	StatusInStock    = "in stock"
	StatusLowStock   = "low stock"
	StatusOutOfStock = "out of stock"
)

// lowStockThreshold is the stock level below which a product is flagged.
const lowStockThreshold = 15

type Product struct {
	ID            string  `bson:"_id" json:"id"`
	UserID        int     `bson:"userId" json:"-"`
	Name          string  `bson:"name" json:"name"`
	SKU           string  `bson:"sku,omitempty" json:"sku"`
	Barcode       string  `bson:"barcode,omitempty" json:"barcode"`
	Category      string  `bson:"category,omitempty" json:"category"`
	Brand         string  `bson:"brand,omitempty" json:"brand"`
	Price         float64 `bson:"price" json:"price"`
	Stock         int     `bson:"stock" json:"stock"`
	Color         string  `bson:"color,omitempty" json:"color"`
	Size          string  `bson:"size,omitempty" json:"size"`
	Status        string  `bson:"status" json:"status"`
	Image         string  `bson:"image,omitempty" json:"image"`
	LastRestocked string  `bson:"lastRestocked" json:"lastRestocked"`
	CreatedAt     string  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     string  `bson:"updatedAt" json:"updatedAt"`
}

// StatusForStock maps a stock count to its display label. The status field is
// always recomputed from stock on create and update, never taken from input.
func StatusForStock(stock int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock < lowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

type Statistics struct {
	TotalProducts int     `json:"total_products"`
	TotalValue    float64 `json:"total_value"`
	LowStock      int     `json:"low_stock"`
	OutOfStock    int     `json:"out_of_stock"`
}

// ComputeStatistics reduces a product collection to its snapshot counters.
// Total value is rounded to two decimals.
func ComputeStatistics(products []Product) Statistics {
	stats := Statistics{TotalProducts: len(products)}
	for _, p := range products {
		stats.TotalValue += p.Price * float64(p.Stock)
		switch p.Status {
		case StatusLowStock:
			stats.LowStock++
		case StatusOutOfStock:
			stats.OutOfStock++
		}
	}
	stats.TotalValue = math.Round(stats.TotalValue*100) / 100
	return stats
}
