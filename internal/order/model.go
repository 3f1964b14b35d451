package order

import "time"

type Status string

const (
	StatusPlaced     Status = "placed"
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// statusRank fixes the forward-only ordering used by the timeline
// projection and by status validation.
var statusRank = map[Status]int{
	StatusPlaced:     0,
	StatusPending:    1,
	StatusProcessing: 2,
	StatusShipped:    3,
	StatusDelivered:  4,
}

func (s Status) Valid() bool {
	if _, ok := statusRank[s]; ok {
		return true
	}
	return s == StatusCancelled || s == StatusRefunded
}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

type Order struct {
	ID              string
	UserID          string
	Items           []Item
	PaymentMethod   string
	ShippingAddress string
	Phone           string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Item is a snapshot of a cart line item at checkout time.
type Item struct {
	ID        string
	OrderID   string
	ProductID string
	Title     string
	Price     int64
	Quantity  int
}

func (i Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Total is always recomputed from the line items. There is no stored
// total column to drift from.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}
