package cache

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

var ctx = context.Background()

type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	redisCache := &RedisCache{Client: client}

	return redisCache, nil
}

/*
* login sessions
 */

// CreateSession stores a new session for the user and returns its token.
// Sessions have no expiry; they live until an explicit logout.
func (r *RedisCache) CreateSession(userID uint) (string, error) {
	token := uuid.NewString()
	key := MakeSessionKey(token)
	if err := r.Client.Set(ctx, key, userID, 0).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// GetSession resolves a session token to the user id it was issued for.
func (r *RedisCache) GetSession(token string) (uint, error) {
	key := MakeSessionKey(token)
	val, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrSessionNotFound
	}
	return uint(userID), nil
}

func (r *RedisCache) DeleteSession(token string) error {
	key := MakeSessionKey(token)
	return r.Client.Del(ctx, key).Err()
}
