// Package checkout implements the checkout orchestrator: discount
// validation and order submission with downstream automation.
package checkout

//go:generate mockgen -destination=mock/mock_service.go -package=checkoutmock github.com/pixself/pixself-api/internal/orchestrators/checkout Service

import (
	"context"
	"log/slog"

	"github.com/pixself/pixself-api/internal/clients/cdn"
	"github.com/pixself/pixself-api/internal/clients/workflow"
	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
	"github.com/pixself/pixself-api/internal/pkg/clock"
	"github.com/pixself/pixself-api/internal/pkg/idgen"
	"github.com/pixself/pixself-api/internal/pricing"
	discountcode "github.com/pixself/pixself-api/internal/repositories/discountcode"
	orderrepo "github.com/pixself/pixself-api/internal/repositories/order"
)

// Service defines the interface for checkout operations
type Service interface {
	// ValidateDiscount checks a code against a cart and computes the
	// discount amount
	ValidateDiscount(ctx context.Context, input *ValidateDiscountInput) (*ValidateDiscountOutput, error)

	// SubmitOrder validates, prices, persists, and announces a new order
	SubmitOrder(ctx context.Context, input *SubmitOrderInput) (*SubmitOrderOutput, error)
}

// Config holds the dependencies for the checkout orchestrator
type Config struct {
	DiscountRepo discountcode.Repository
	OrderRepo    orderrepo.Repository
	Workflow     workflow.Client
	// Uploader is optional; without it orders carry no image URL
	Uploader    cdn.Uploader
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiscountRepo == nil {
		vb.RequiredField("DiscountRepo")
	}
	if c.OrderRepo == nil {
		vb.RequiredField("OrderRepo")
	}
	if c.Workflow == nil {
		vb.RequiredField("Workflow")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	discountRepo discountcode.Repository
	orderRepo    orderrepo.Repository
	workflow     workflow.Client
	uploader     cdn.Uploader
	idGen        idgen.Generator
	clock        clock.Clock
	logger       *slog.Logger
}

// NewOrchestrator creates a new checkout orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		discountRepo: cfg.DiscountRepo,
		orderRepo:    cfg.OrderRepo,
		workflow:     cfg.Workflow,
		uploader:     cfg.Uploader,
		idGen:        cfg.IDGenerator,
		clock:        clk,
		logger:       logger,
	}, nil
}

func (o *orchestrator) ValidateDiscount(ctx context.Context, input *ValidateDiscountInput) (*ValidateDiscountOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Code == "" {
		return nil, errors.InvalidArgument("discount code is required")
	}

	got, err := o.discountRepo.GetByCode(ctx, discountcode.GetByCodeInput{Code: input.Code})
	if err != nil {
		// An unknown code is a rule rejection, not a system failure
		if errors.IsCode(err, errors.CodeNotFound) {
			return &ValidateDiscountOutput{
				Valid:   false,
				Message: "discount code not found",
			}, nil
		}
		return nil, errors.Wrap(err, "failed to look up discount code")
	}

	result := pricing.Evaluate(got.Code, input.Items, o.clock.Now())

	return &ValidateDiscountOutput{
		Valid:          result.Valid,
		DiscountAmount: result.DiscountAmount,
		Message:        result.Message,
		Code:           result.Code,
	}, nil
}

func (o *orchestrator) SubmitOrder(ctx context.Context, input *SubmitOrderInput) (*SubmitOrderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSubmit(input); err != nil {
		return nil, err
	}

	subtotal := entities.Subtotal(input.Items)

	// Re-evaluate the discount server-side; the client's amount is never
	// trusted.
	var (
		discountAmount int64
		discountCode   string
	)
	if input.DiscountCode != "" {
		validated, err := o.ValidateDiscount(ctx, &ValidateDiscountInput{
			Code:  input.DiscountCode,
			Items: input.Items,
		})
		if err != nil {
			return nil, err
		}
		if !validated.Valid {
			return nil, errors.InvalidArgumentf("discount code rejected: %s", validated.Message)
		}
		discountAmount = validated.DiscountAmount
		discountCode = input.DiscountCode
	}

	now := o.clock.Now().Unix()
	order := &entities.Order{
		ID:             o.idGen.Generate(),
		SessionID:      input.SessionID,
		Customer:       input.Customer,
		Items:          input.Items,
		Subtotal:       subtotal,
		DiscountCode:   discountCode,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
		Status:         entities.OrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Image upload is best-effort: an order without a CDN image is still an
	// order.
	if o.uploader != nil && len(input.ImagePNG) > 0 {
		url, err := o.uploader.UploadPNG(ctx, order.ID, input.ImagePNG)
		if err != nil {
			o.logger.Warn("composite upload failed", "order_id", order.ID, "error", err)
		} else {
			order.ImageURL = url
		}
	}

	created, err := o.orderRepo.Create(ctx, orderrepo.CreateInput{Order: order})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store order")
	}

	// Downstream automation is best-effort too; the stored order survives
	// a webhook outage.
	if err := o.workflow.TriggerOrderCreated(ctx, created.Order); err != nil {
		o.logger.Error("order webhook delivery failed", "order_id", order.ID, "error", err)
	}

	o.logger.Info("order submitted",
		"order_id", order.ID,
		"subtotal", order.Subtotal,
		"discount", order.DiscountAmount,
		"total", order.Total,
	)

	return &SubmitOrderOutput{Order: created.Order}, nil
}

func validateSubmit(input *SubmitOrderInput) error {
	vb := errors.NewValidationBuilder()

	if len(input.Items) == 0 {
		vb.Field("Items", "cart cannot be empty")
	}
	for i, item := range input.Items {
		if item.Price < 0 {
			vb.Fieldf("Items", "item %d has negative price", i)
		}
	}
	if input.Customer.Name == "" {
		vb.RequiredField("Customer.Name")
	}
	if input.Customer.Phone == "" {
		vb.RequiredField("Customer.Phone")
	}

	return vb.Build()
}
