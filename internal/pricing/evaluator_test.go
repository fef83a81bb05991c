package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/pricing"
)

type EvaluatorTestSuite struct {
	suite.Suite
	now   time.Time
	items []entities.CartItem
}

func (s *EvaluatorTestSuite) SetupTest() {
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s.items = []entities.CartItem{
		{ID: "item-1", Name: "Keychain", Price: 49000},
		{ID: "item-2", Name: "Keychain", Price: 51000},
	}
}

func (s *EvaluatorTestSuite) activeCode() *entities.DiscountCode {
	return &entities.DiscountCode{
		Code:          "SUMMER10",
		DiscountType:  entities.DiscountPercentage,
		DiscountValue: 10,
		ApplyTo:       entities.ApplyToTotal,
		IsActive:      true,
	}
}

func (s *EvaluatorTestSuite) TestValidationChain() {
	past := s.now.Add(-24 * time.Hour)
	future := s.now.Add(24 * time.Hour)

	s.Run("inactive code", func() {
		code := s.activeCode()
		code.IsActive = false

		result := pricing.Evaluate(code, s.items, s.now)
		s.False(result.Valid)
		s.Equal(pricing.MsgNotActive, result.Message)
		s.Zero(result.DiscountAmount)
	})

	s.Run("not yet valid", func() {
		code := s.activeCode()
		code.ValidFrom = &future

		result := pricing.Evaluate(code, s.items, s.now)
		s.False(result.Valid)
		s.Equal(pricing.MsgNotYetValid, result.Message)
	})

	s.Run("expired", func() {
		code := s.activeCode()
		code.ValidUntil = &past

		result := pricing.Evaluate(code, s.items, s.now)
		s.False(result.Valid)
		s.Equal(pricing.MsgExpired, result.Message)
	})

	s.Run("inside validity window", func() {
		code := s.activeCode()
		code.ValidFrom = &past
		code.ValidUntil = &future

		result := pricing.Evaluate(code, s.items, s.now)
		s.True(result.Valid)
	})

	s.Run("minimum purchase not met", func() {
		code := s.activeCode()
		code.MinPurchase = 150000

		result := pricing.Evaluate(code, s.items, s.now)
		s.False(result.Valid)
		s.Equal("minimum purchase of 150.000₫ not met", result.Message)
	})

	s.Run("usage limit reached", func() {
		code := s.activeCode()
		code.UsageLimit = 100
		code.UsageCount = 100

		result := pricing.Evaluate(code, s.items, s.now)
		s.False(result.Valid)
		s.Equal(pricing.MsgUsageLimit, result.Message)
	})

	s.Run("usage below limit", func() {
		code := s.activeCode()
		code.UsageLimit = 100
		code.UsageCount = 99

		result := pricing.Evaluate(code, s.items, s.now)
		s.True(result.Valid)
	})
}

func (s *EvaluatorTestSuite) TestPercentageOfTotal() {
	s.Run("plain percentage", func() {
		result := pricing.Evaluate(s.activeCode(), s.items, s.now)
		s.True(result.Valid)
		s.Equal(int64(10000), result.DiscountAmount)
		s.Equal(pricing.MsgApplied, result.Message)
	})

	s.Run("capped by max discount", func() {
		code := s.activeCode()
		code.MaxDiscount = 5000

		result := pricing.Evaluate(code, s.items, s.now)
		s.True(result.Valid)
		s.Equal(int64(5000), result.DiscountAmount)
	})

	s.Run("rounds half up", func() {
		code := s.activeCode()
		code.DiscountValue = 15

		items := []entities.CartItem{{ID: "item-1", Price: 4903}}
		// 4903 * 15% = 735.45, rounds down to 735
		result := pricing.Evaluate(code, items, s.now)
		s.Equal(int64(735), result.DiscountAmount)

		items[0].Price = 4910
		// 4910 * 15% = 736.5, rounds up to 737
		result = pricing.Evaluate(code, items, s.now)
		s.Equal(int64(737), result.DiscountAmount)
	})
}

func (s *EvaluatorTestSuite) TestFixedOffTotal() {
	code := &entities.DiscountCode{
		Code:          "MINUS20K",
		DiscountType:  entities.DiscountFixed,
		DiscountValue: 20000,
		ApplyTo:       entities.ApplyToTotal,
		IsActive:      true,
	}

	s.Run("fixed amount off", func() {
		result := pricing.Evaluate(code, s.items, s.now)
		s.True(result.Valid)
		s.Equal(int64(20000), result.DiscountAmount)
	})

	s.Run("clamped to the subtotal", func() {
		small := []entities.CartItem{{ID: "item-1", Price: 15000}}

		result := pricing.Evaluate(code, small, s.now)
		s.True(result.Valid)
		s.Equal(int64(15000), result.DiscountAmount)
	})
}

func (s *EvaluatorTestSuite) TestFirstItemRate() {
	code := &entities.DiscountCode{
		Code:         "FIRSTONE",
		DiscountType: entities.DiscountPercentage,
		ApplyTo:      entities.ApplyToFirstItem,
		IsActive:     true,
	}

	s.Run("standard rate without gift box", func() {
		result := pricing.Evaluate(code, s.items, s.now)
		s.True(result.Valid)
		// 15% of the first item only
		s.Equal(int64(7350), result.DiscountAmount)
	})

	s.Run("reduced rate with gift box", func() {
		items := []entities.CartItem{
			{ID: "item-1", Price: 49000, HasGiftBox: true},
			{ID: "item-2", Price: 51000},
		}

		result := pricing.Evaluate(code, items, s.now)
		s.True(result.Valid)
		s.Equal(int64(4900), result.DiscountAmount)
	})

	s.Run("only the first item's gift box matters", func() {
		items := []entities.CartItem{
			{ID: "item-1", Price: 49000},
			{ID: "item-2", Price: 51000, HasGiftBox: true},
		}

		result := pricing.Evaluate(code, items, s.now)
		s.Equal(int64(7350), result.DiscountAmount)
	})

	s.Run("empty cart is rejected", func() {
		result := pricing.Evaluate(code, nil, s.now)
		s.False(result.Valid)
		s.Equal(pricing.MsgNoItems, result.Message)
	})
}

func (s *EvaluatorTestSuite) TestGiftCode() {
	code := &entities.DiscountCode{
		Code:         "FREEGIFT",
		DiscountType: entities.DiscountGift,
		ApplyTo:      entities.ApplyToTotal,
		IsActive:     true,
	}

	result := pricing.Evaluate(code, s.items, s.now)
	s.True(result.Valid)
	s.Zero(result.DiscountAmount)
	s.Equal(pricing.MsgGiftAtFulfilled, result.Message)
}

func (s *EvaluatorTestSuite) TestZeroAmountIsValid() {
	code := s.activeCode()
	code.DiscountValue = 0

	result := pricing.Evaluate(code, s.items, s.now)
	s.True(result.Valid)
	s.Zero(result.DiscountAmount)
	s.Equal(pricing.MsgNoDiscount, result.Message)
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0₫", pricing.FormatVND(0))
	assert.Equal(t, "500₫", pricing.FormatVND(500))
	assert.Equal(t, "1.000₫", pricing.FormatVND(1000))
	assert.Equal(t, "49.000₫", pricing.FormatVND(49000))
	assert.Equal(t, "1.250.000₫", pricing.FormatVND(1250000))
	assert.Equal(t, "-15.000₫", pricing.FormatVND(-15000))
}
