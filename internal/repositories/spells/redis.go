package spells

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/spellbook-api/internal/entities/dnd5e"
	"github.com/KirkDiggler/spellbook-api/internal/errors"
	redisclient "github.com/KirkDiggler/spellbook-api/internal/redis"
)

const (
	// Key pattern: spellbook:snapshot:{source}
	snapshotKeyPrefix  = "spellbook:snapshot:"
	defaultSnapshotTTL = 24 * time.Hour

	errSourceEmpty = "source name cannot be empty"
)

// RedisConfig configures the Redis snapshot cache
type RedisConfig struct {
	Client redisclient.Client
	// TTL of a stored snapshot. Zero means the default of 24h; negative
	// disables expiry.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisSnapshot struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisSnapshot creates a snapshot cache backed by Redis
func NewRedisSnapshot(cfg *RedisConfig) (Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	switch {
	case ttl == 0:
		ttl = defaultSnapshotTTL
	case ttl < 0:
		ttl = 0
	}

	return &redisSnapshot{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// Get returns the cached record set for source
func (r *redisSnapshot) Get(ctx context.Context, source string) ([]*dnd5e.Spell, error) {
	if source == "" {
		return nil, errors.InvalidArgument(errSourceEmpty)
	}

	data, err := r.client.Get(ctx, snapshotKey(source)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no snapshot for source %s", source)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read snapshot from Redis")
	}

	var spells []*dnd5e.Spell
	if err := json.Unmarshal(data, &spells); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "corrupt snapshot for source %s", source)
	}

	return spells, nil
}

// Put stores the record set for source, replacing any earlier snapshot
func (r *redisSnapshot) Put(ctx context.Context, source string, spells []*dnd5e.Spell) error {
	if source == "" {
		return errors.InvalidArgument(errSourceEmpty)
	}

	data, err := json.Marshal(spells)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, snapshotKey(source), data, r.ttl).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store snapshot in Redis")
	}

	return nil
}

func snapshotKey(source string) string {
	return snapshotKeyPrefix + source
}
