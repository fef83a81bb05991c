package characterdraft

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/pixself/pixself-api/internal/entities"
	"github.com/pixself/pixself-api/internal/errors"
	redisclient "github.com/pixself/pixself-api/internal/redis"
)

const (
	draftKeyPrefix = "character:draft:"
	defaultTTL     = 7 * 24 * time.Hour

	// Error messages
	errDraftNil       = "draft cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed character draft repository.
// ttl <= 0 uses the default of seven days.
func NewRedisRepository(client redisclient.Client, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Draft.Selections == nil {
		return nil, errors.InvalidArgument("draft selections cannot be nil")
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	key := draftKeyPrefix + input.Draft.SessionID
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save draft")
	}

	return &SaveOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) GetBySession(ctx context.Context, input GetBySessionInput) (*GetBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no draft found for session %s", input.SessionID)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	var draft entities.CharacterDraft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	return &GetBySessionOutput{Draft: &draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	deleted, err := r.client.Del(ctx, draftKeyPrefix+input.SessionID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("no draft found for session %s", input.SessionID)
	}

	return &DeleteOutput{}, nil
}
