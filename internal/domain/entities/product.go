package entities

import "time"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Sku           string    `json:"sku"`
	Images        []string  `json:"images"`
	Stock         int       `json:"stock"`
	CategoryID    string    `json:"categoryId"`
	Rating        float64   `json:"rating"`
	CurrentPrice  float64   `json:"currentPrice"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Colors        []string  `json:"colors"`
	Sizes         []string  `json:"sizes"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
