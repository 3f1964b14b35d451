package cart

import (
	"time"

	"digipasal-be/internal/product"
)

// LineItem is one product entry in the cart. Adding is idempotent for
// presence; quantity only changes through an explicit quantity update.
type LineItem struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
}

func (li LineItem) Subtotal() int64 {
	return li.Price * int64(li.Quantity)
}

// Snapshot is the serialized cart state mirrored to storage on every change.
type Snapshot struct {
	Items      []LineItem `json:"items"`
	Total      int64      `json:"total"`
	CapturedAt time.Time  `json:"captured_at"`
}

// Total sums unit price times quantity over all line items.
func Total(items []LineItem) int64 {
	var total int64
	for _, li := range items {
		total += li.Subtotal()
	}
	return total
}

// NewLineItem copies the product fields into a fresh line item.
func NewLineItem(p product.Product) LineItem {
	return LineItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Category:  p.Category,
		Quantity:  1,
	}
}
