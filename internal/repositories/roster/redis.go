package roster

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/skirmishforge/warband-api/internal/entities"
	"github.com/skirmishforge/warband-api/internal/errors"
	redisclient "github.com/skirmishforge/warband-api/internal/redis"
)

const (
	rosterKeyPrefix = "roster:"
	rosterIndexKey  = "rosters"

	// Error messages
	errRosterNil     = "roster cannot be nil"
	errRosterIDEmpty = "roster ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis roster repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Roster == nil {
		return nil, errors.InvalidArgument(errRosterNil)
	}
	if input.Roster.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	key := rosterKeyPrefix + input.Roster.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("roster with ID %s already exists", input.Roster.ID)
	}

	if err := r.write(ctx, key, input.Roster); err != nil {
		return nil, errors.Wrapf(err, "failed to create roster")
	}

	return &CreateOutput{Roster: input.Roster}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	roster, err := r.read(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Roster: roster}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Roster == nil {
		return nil, errors.InvalidArgument(errRosterNil)
	}
	if input.Roster.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	// Unconditional overwrite: the store assumes one writer per roster.
	key := rosterKeyPrefix + input.Roster.ID
	if err := r.write(ctx, key, input.Roster); err != nil {
		return nil, errors.Wrapf(err, "failed to update roster")
	}

	return &UpdateOutput{Roster: input.Roster}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	key := rosterKeyPrefix + input.ID

	pipe := r.client.TxPipeline()
	delCmd := pipe.Del(ctx, key)
	pipe.SRem(ctx, rosterIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roster")
	}

	if delCmd.Val() == 0 {
		return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, rosterIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list rosters")
	}

	result := &ListOutput{}
	for _, id := range ids {
		roster, err := r.read(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry; skip it.
				continue
			}
			return nil, err
		}
		result.Rosters = append(result.Rosters, roster)
	}

	sort.Slice(result.Rosters, func(i, j int) bool {
		a, b := result.Rosters[i], result.Rosters[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return result, nil
}

func (r *redisRepository) write(ctx context.Context, key string, roster *entities.Roster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal roster data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // Rosters never expire
	pipe.SAdd(ctx, rosterIndexKey, roster.ID)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisRepository) read(ctx context.Context, id string) (*entities.Roster, error) {
	result, err := r.client.Get(ctx, rosterKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("roster with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get roster")
	}

	var roster entities.Roster
	if err := json.Unmarshal([]byte(result), &roster); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal roster data")
	}

	return &roster, nil
}
