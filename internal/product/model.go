package product

import "time"

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating,omitempty"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SortMode selects the catalog ordering.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortNameAsc   SortMode = "name_asc"
)

type NewProductInput struct {
	Title       string
	Price       int64
	ImageURL    string
	Category    string
	Description string
	Rating      *float64
}

type UpdateProductInput struct {
	ID          string
	Title       *string
	Price       *int64
	ImageURL    *string
	Category    *string
	Description *string
	Rating      *float64
}

func (in UpdateProductInput) HasAnyField() bool {
	return in.Title != nil ||
		in.Price != nil ||
		in.ImageURL != nil ||
		in.Category != nil ||
		in.Description != nil ||
		in.Rating != nil
}
