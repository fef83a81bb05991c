// Package order defines the interface for order persistence
package order

//go:generate mockgen -destination=mock/mock_repository.go -package=ordermock github.com/pixself/pixself-api/internal/repositories/order Repository

import (
	"context"

	"github.com/pixself/pixself-api/internal/entities"
)

// Repository defines the interface for order persistence
type Repository interface {
	// Create stores a new order
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the order ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an order by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the order doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// UpdateStatus moves an order to a new status
	// Returns errors.NotFound if the order doesn't exist
	// Returns errors.Internal for storage failures
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error)
}

// CreateInput defines the input for storing an order
type CreateInput struct {
	Order *entities.Order
}

// CreateOutput defines the output for storing an order
type CreateOutput struct {
	Order *entities.Order
}

// GetInput defines the input for fetching an order
type GetInput struct {
	ID string
}

// GetOutput defines the output for fetching an order
type GetOutput struct {
	Order *entities.Order
}

// UpdateStatusInput defines the input for a status transition
type UpdateStatusInput struct {
	ID     string
	Status entities.OrderStatus
}

// UpdateStatusOutput defines the output for a status transition
type UpdateStatusOutput struct {
	Order *entities.Order
}
