package entities

import "time"

// DiscountType tags how a discount amount is computed
type DiscountType string

// Discount types as stored on the code record
const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
	DiscountGift       DiscountType = "gift"
)

// ApplyTo tags which base the discount applies against
type ApplyTo string

// Discount application targets
const (
	ApplyToTotal     ApplyTo = "total"
	ApplyToFirstItem ApplyTo = "first_item"
)

// DiscountCode is a promo code record. It is created and administered
// externally; this service only validates and computes against it. Usage
// counters are incremented by the external admin flow, never here.
//
// All monetary fields are in VND, which has no fractional subunit.
type DiscountCode struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue int64        `json:"discountValue"`
	ApplyTo       ApplyTo      `json:"applyTo"`
	MinPurchase   int64        `json:"minPurchase,omitempty"`
	MaxDiscount   int64        `json:"maxDiscount,omitempty"`
	IsActive      bool         `json:"isActive"`
	ValidFrom     *time.Time   `json:"validFrom,omitempty"`
	ValidUntil    *time.Time   `json:"validUntil,omitempty"`
	UsageLimit    int          `json:"usageLimit,omitempty"`
	UsageCount    int          `json:"usageCount"`
}

// CartItem is the read-only projection of a checkout cart line used for
// discount evaluation. Price is VND.
type CartItem struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Price      int64  `json:"price"`
	HasGiftBox bool   `json:"hasGiftBox"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// Subtotal sums item prices
func Subtotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price
	}
	return total
}
