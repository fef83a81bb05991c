// Package pricing implements discount code validation and amount
// calculation. It is a pure function of the code record, the cart, and the
// current time; usage counters are mutated by the external admin flow,
// never here.
//
// All amounts are VND, which has no fractional subunit.
package pricing

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
)

// Validation and result messages
const (
	MsgNotActive       = "discount code is not active"
	MsgNotYetValid     = "discount code is not yet valid"
	MsgExpired         = "discount code has expired"
	MsgUsageLimit      = "discount code usage limit reached"
	MsgNoItems         = "no items in cart"
	MsgApplied         = "discount applied"
	MsgNoDiscount      = "no discount applicable"
	MsgGiftAtFulfilled = "gift applies at fulfilment"
)

// First-item promotional rates. This is a code-family-specific carve-out:
// first_item codes ignore their generic type/value fields entirely and use
// these rates, switched on the gift-box flag of the first cart item.
const (
	firstItemGiftBoxPercent  = 10
	firstItemStandardPercent = 15
)

// Result is the outcome of evaluating a code against a cart. Valid=false
// means the code's rules reject the cart; a valid code can still carry a
// zero amount ("no discount applicable"), which is a distinct outcome.
type Result struct {
	Valid          bool                   `json:"valid"`
	DiscountAmount int64                  `json:"discountAmount"`
	Message        string                 `json:"message"`
	Code           *entities.DiscountCode `json:"code,omitempty"`
}

// strategy is the tagged union of discount calculations. Exactly one
// strategy applies per code.
type strategy interface {
	amount(items []entities.CartItem, subtotal int64) (int64, error)
}

// percentOfTotal discounts a percentage of the cart subtotal
type percentOfTotal struct {
	percent int64
}

func (s percentOfTotal) amount(_ []entities.CartItem, subtotal int64) (int64, error) {
	return roundPercent(subtotal, s.percent), nil
}

// fixedOffTotal discounts a fixed amount, never more than the subtotal
type fixedOffTotal struct {
	value int64
}

func (s fixedOffTotal) amount(_ []entities.CartItem, subtotal int64) (int64, error) {
	if s.value > subtotal {
		return subtotal, nil
	}
	return s.value, nil
}

// firstItemRate is the promotional first_item rule: a flat rate on the
// first cart item, higher without a gift box. No other strategy reads the
// gift-box flag.
type firstItemRate struct {
	giftBoxPercent  int64
	standardPercent int64
}

func (s firstItemRate) amount(items []entities.CartItem, _ int64) (int64, error) {
	if len(items) == 0 {
		return 0, errors.FailedPrecondition(MsgNoItems)
	}
	first := items[0]
	percent := s.standardPercent
	if first.HasGiftBox {
		percent = s.giftBoxPercent
	}
	return roundPercent(first.Price, percent), nil
}

// giftItem codes add a physical gift at fulfilment; they never reduce the
// total
type giftItem struct{}

func (s giftItem) amount(_ []entities.CartItem, _ int64) (int64, error) {
	return 0, nil
}

func strategyFor(code *entities.DiscountCode) strategy {
	if code.ApplyTo == entities.ApplyToFirstItem {
		return firstItemRate{
			giftBoxPercent:  firstItemGiftBoxPercent,
			standardPercent: firstItemStandardPercent,
		}
	}
	switch code.DiscountType {
	case entities.DiscountPercentage:
		return percentOfTotal{percent: code.DiscountValue}
	case entities.DiscountFixed:
		return fixedOffTotal{value: code.DiscountValue}
	case entities.DiscountGift:
		return giftItem{}
	default:
		return giftItem{}
	}
}

// Evaluate validates a code against a cart and computes the discount.
// Validation is a sequential short-circuit: the first failing rule decides
// the message.
func Evaluate(code *entities.DiscountCode, items []entities.CartItem, now time.Time) Result {
	subtotal := entities.Subtotal(items)

	if !code.IsActive {
		return invalid(code, MsgNotActive)
	}
	if code.ValidFrom != nil && now.Before(*code.ValidFrom) {
		return invalid(code, MsgNotYetValid)
	}
	if code.ValidUntil != nil && now.After(*code.ValidUntil) {
		return invalid(code, MsgExpired)
	}
	if code.MinPurchase > 0 && subtotal < code.MinPurchase {
		return invalid(code, fmt.Sprintf("minimum purchase of %s not met", FormatVND(code.MinPurchase)))
	}
	if code.UsageLimit > 0 && code.UsageCount >= code.UsageLimit {
		return invalid(code, MsgUsageLimit)
	}

	amount, err := strategyFor(code).amount(items, subtotal)
	if err != nil {
		return invalid(code, messageOf(err))
	}

	if code.MaxDiscount > 0 && amount > code.MaxDiscount {
		amount = code.MaxDiscount
	}
	if amount < 0 {
		amount = 0
	}

	message := MsgApplied
	if amount == 0 {
		message = MsgNoDiscount
		if code.DiscountType == entities.DiscountGift {
			message = MsgGiftAtFulfilled
		}
	}

	return Result{
		Valid:          true,
		DiscountAmount: amount,
		Message:        message,
		Code:           code,
	}
}

func invalid(code *entities.DiscountCode, message string) Result {
	return Result{Valid: false, Message: message, Code: code}
}

func messageOf(err error) string {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// roundPercent computes base*percent/100 with round-half-up, the only
// rounding point in the whole calculation
func roundPercent(base, percent int64) int64 {
	return (base*percent + 50) / 100
}

// FormatVND renders an amount with dot thousands separators and the dong
// sign, e.g. 100000 -> "100.000₫"
func FormatVND(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	formatted := string(out) + "₫"
	if neg {
		return "-" + formatted
	}
	return formatted
}
