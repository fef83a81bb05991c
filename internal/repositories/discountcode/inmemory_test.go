package discountcode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
	discountcode "github.com/pixself/pixself-api/internal/repositories/discountcode"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo discountcode.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = discountcode.NewInMemoryRepository(
		&entities.DiscountCode{
			Code:          "SUMMER10",
			DiscountType:  entities.DiscountPercentage,
			DiscountValue: 10,
			ApplyTo:       entities.ApplyToTotal,
			IsActive:      true,
		},
		nil,
	)
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestGetByCode() {
	s.Run("existing code", func() {
		got, err := s.repo.GetByCode(s.ctx, discountcode.GetByCodeInput{Code: "SUMMER10"})
		s.Require().NoError(err)
		s.Equal("SUMMER10", got.Code.Code)
		s.Equal(int64(10), got.Code.DiscountValue)
	})

	s.Run("whitespace is trimmed", func() {
		got, err := s.repo.GetByCode(s.ctx, discountcode.GetByCodeInput{Code: "  SUMMER10  "})
		s.Require().NoError(err)
		s.Equal("SUMMER10", got.Code.Code)
	})

	s.Run("unknown code", func() {
		_, err := s.repo.GetByCode(s.ctx, discountcode.GetByCodeInput{Code: "NOPE"})
		s.Require().Error(err)
		s.True(errors.IsCode(err, errors.CodeNotFound))
	})

	s.Run("empty code", func() {
		_, err := s.repo.GetByCode(s.ctx, discountcode.GetByCodeInput{Code: ""})
		s.Require().Error(err)
		s.True(errors.IsCode(err, errors.CodeInvalidArgument))
	})
}

func (s *InMemoryRepositoryTestSuite) TestCallerCannotMutateStore() {
	got, err := s.repo.GetByCode(s.ctx, discountcode.GetByCodeInput{Code: "SUMMER10"})
	s.Require().NoError(err)

	got.Code.DiscountValue = 99

	again, err := s.repo.GetByCode(s.ctx, discountcode.GetByCodeInput{Code: "SUMMER10"})
	s.Require().NoError(err)
	s.Equal(int64(10), again.Code.DiscountValue)
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
