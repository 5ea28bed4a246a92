package redis

import (
	"github.com/redis/go-redis/v9"
)

// Nil is returned by reads of a missing key
const Nil = redis.Nil

// Client wraps redis.UniversalClient to allow for easy substitution in tests
type Client interface {
	redis.UniversalClient
}
