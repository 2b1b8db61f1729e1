package models

import "time"

// CategoriesResponse lists the distinct product categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// StatsResponse summarises the catalog for dashboards
type StatsResponse struct {
	TotalProducts       int       `json:"total_products"`
	TotalCategories     int       `json:"total_categories"`
	Categories          []string  `json:"categories"`
	TotalInventoryValue float64   `json:"total_inventory_value"`
	AveragePrice        float64   `json:"average_price"`
	Status              string    `json:"status"`
	LastUpdated         time.Time `json:"last_updated"`
}
