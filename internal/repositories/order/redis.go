package order

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
	"github.com/pixself/pixself-api/internal/pkg/clock"
	redisclient "github.com/pixself/pixself-api/internal/redis"
)

const (
	orderKeyPrefix     = "order:"
	sessionIndexPrefix = "order:session:"

	// Error messages
	errOrderNil     = "order cannot be nil"
	errOrderIDEmpty = "order ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis-backed order repository
func NewRedisRepository(client redisclient.Client, clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &redisRepository{
		client: client,
		clock:  clk,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Order == nil {
		return nil, errors.InvalidArgument(errOrderNil)
	}
	if input.Order.ID == "" {
		return nil, errors.InvalidArgument(errOrderIDEmpty)
	}

	key := orderKeyPrefix + input.Order.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existing order")
	}
	if exists > 0 {
		return nil, errors.Newf(errors.CodeAlreadyExists, "order %s already exists", input.Order.ID)
	}

	data, err := json.Marshal(input.Order)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal order")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Order.SessionID != "" {
		pipe.RPush(ctx, sessionIndexPrefix+input.Order.SessionID, input.Order.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create order")
	}

	return &CreateOutput{Order: input.Order}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errOrderIDEmpty)
	}

	result, err := r.client.Get(ctx, orderKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("order %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get order")
	}

	var o entities.Order
	if err := json.Unmarshal([]byte(result), &o); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal order")
	}

	return &GetOutput{Order: &o}, nil
}

func (r *redisRepository) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error) {
	got, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	o := got.Order
	o.Status = input.Status
	o.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(o)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal order")
	}
	if err := r.client.Set(ctx, orderKeyPrefix+o.ID, data, time.Duration(0)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update order")
	}

	return &UpdateStatusOutput{Order: o}, nil
}
