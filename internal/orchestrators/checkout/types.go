package checkout

import (
	"github.com/pixself/pixself-api/internal/entities"
)

// ValidateDiscountInput defines the request for validating a discount code
type ValidateDiscountInput struct {
	Code  string
	Items []entities.CartItem
}

// ValidateDiscountOutput defines the response for validating a discount
// code. Valid=false with a message is a business-rule rejection, not an
// error; system failures surface as errors instead.
type ValidateDiscountOutput struct {
	Valid          bool
	DiscountAmount int64
	Message        string
	Code           *entities.DiscountCode
}

// SubmitOrderInput defines the request for submitting an order
type SubmitOrderInput struct {
	SessionID    string
	Customer     entities.Customer
	Items        []entities.CartItem
	DiscountCode string
	// ImagePNG is the rendered composite attached to the order
	ImagePNG []byte
}

// SubmitOrderOutput defines the response for submitting an order
type SubmitOrderOutput struct {
	Order *entities.Order
}
