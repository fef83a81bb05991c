package discountcode

import (
	"context"
	"strings"
	"sync"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
)

type inMemoryRepository struct {
	mu    sync.RWMutex
	codes map[string]entities.DiscountCode
}

// NewInMemoryRepository creates an in-memory discount code repository,
// seeded with the given codes. Used in tests and dev mode.
func NewInMemoryRepository(codes ...*entities.DiscountCode) Repository {
	byCode := make(map[string]entities.DiscountCode, len(codes))
	for _, c := range codes {
		if c != nil {
			byCode[c.Code] = *c
		}
	}
	return &inMemoryRepository{codes: byCode}
}

func (r *inMemoryRepository) GetByCode(_ context.Context, input GetByCodeInput) (*GetByCodeOutput, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return nil, errors.InvalidArgument(errCodeEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	dc, ok := r.codes[code]
	if !ok {
		return nil, errors.NotFoundf("discount code %s not found", code)
	}

	// Copy so callers cannot mutate the stored record
	out := dc
	return &GetByCodeOutput{Code: &out}, nil
}
