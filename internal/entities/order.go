package entities

// OrderStatus tracks an order through the fulfilment pipeline
type OrderStatus string

// Order statuses
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Customer is the shipping contact captured at checkout
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note,omitempty"`
}

// Order is a submitted keychain order. Amounts are VND. ImageURL points at
// the rendered composite uploaded to the CDN, when upload succeeded.
type Order struct {
	ID             string      `json:"id"`
	SessionID      string      `json:"sessionId"`
	Customer       Customer    `json:"customer"`
	Items          []CartItem  `json:"items"`
	Subtotal       int64       `json:"subtotal"`
	DiscountCode   string      `json:"discountCode,omitempty"`
	DiscountAmount int64       `json:"discountAmount"`
	Total          int64       `json:"total"`
	ImageURL       string      `json:"imageUrl,omitempty"`
	Status         OrderStatus `json:"status"`
	CreatedAt      int64       `json:"createdAt"`
	UpdatedAt      int64       `json:"updatedAt"`
}
