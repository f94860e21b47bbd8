package layouts

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-api/internal/errors"
	"github.com/KirkDiggler/dungeon-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dungeon-api/internal/redis"
)

const (
	layoutKeyPrefix = "layout:"
	seedIndexPrefix = "layout:seed:"

	errLayoutNil     = "layout data cannot be nil"
	errLayoutIDEmpty = "layout ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis layout repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed layout repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func seedIndexKey(seed int64) string {
	return fmt.Sprintf("%s%d", seedIndexPrefix, seed)
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Data == nil {
		return nil, errors.InvalidArgument(errLayoutNil)
	}
	if input.Data.ID == "" {
		return nil, errors.InvalidArgument(errLayoutIDEmpty)
	}

	key := layoutKeyPrefix + input.Data.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("layout with ID %s already exists", input.Data.ID)
	}

	if input.Data.CreatedAt.IsZero() {
		input.Data.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(input.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal layout data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, seedIndexKey(input.Data.Seed), input.Data.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save layout")
	}

	return &SaveOutput{Success: true}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument(errLayoutIDEmpty)
	}

	key := layoutKeyPrefix + input.LayoutID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("layout with ID %s not found", input.LayoutID)
		}
		return nil, errors.Wrapf(err, "failed to get layout")
	}

	var data LayoutData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal layout data")
	}

	return &GetOutput{Data: &data}, nil
}

func (r *redisRepository) ListBySeed(ctx context.Context, input *ListBySeedInput) (*ListBySeedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ids, err := r.client.SMembers(ctx, seedIndexKey(input.Seed)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list layouts by seed")
	}

	return &ListBySeedOutput{LayoutIDs: ids}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument(errLayoutIDEmpty)
	}

	// Fetch first so the seed index entry can be removed too.
	got, err := r.Get(ctx, &GetInput{LayoutID: input.LayoutID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, layoutKeyPrefix+input.LayoutID)
	pipe.SRem(ctx, seedIndexKey(got.Data.Seed), input.LayoutID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete layout")
	}

	return &DeleteOutput{Success: true}, nil
}
