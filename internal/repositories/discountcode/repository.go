// Package discountcode defines the interface for discount code lookups.
// Codes are administered externally; this repository is read-only.
package discountcode

//go:generate mockgen -destination=mock/mock_repository.go -package=discountcodemock github.com/pixself/pixself-api/internal/repositories/discountcode Repository

import (
	"context"

	"github.com/pixself/pixself-api/internal/entities"
)

// Repository defines the interface for discount code lookups
type Repository interface {
	// GetByCode retrieves a discount code by its code string
	// Returns errors.InvalidArgument for empty codes
	// Returns errors.NotFound if the code doesn't exist
	// Returns errors.Internal for storage failures
	GetByCode(ctx context.Context, input GetByCodeInput) (*GetByCodeOutput, error)
}

// GetByCodeInput defines the input for looking up a discount code
type GetByCodeInput struct {
	Code string
}

// GetByCodeOutput defines the output for looking up a discount code
type GetByCodeOutput struct {
	Code *entities.DiscountCode
}
