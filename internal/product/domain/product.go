package domain

import (
	"time"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"` // Menggunakan float untuk kemudahan, decimal lebih baik untuk uang
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductRequest is the payload for both create and update. Updates replace
// every mutable column, so both operations carry the full field set.
// Quantity and Price are pointers so a missing field can be told apart from
// a legitimate zero.
type ProductRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// Stats is the aggregate row behind the dashboard.
type Stats struct {
	TotalProducts int64   `json:"total_products"`
	TotalItems    int64   `json:"total_items"`
	Categories    int64   `json:"categories"`
	TotalValue    float64 `json:"total_value"`
}
