package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"devmatch/internal/domain"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const userKeyPrefix = "devmatch:user:" // devmatch:user:{user_id}

type userSource interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserCache is a read-through cache in front of the user query port. Redis
// failures degrade to a direct lookup.
type UserCache struct {
	client *goredis.Client
	next   userSource
	ttl    time.Duration
	log    *zap.Logger
}

func NewUserCache(client *goredis.Client, next userSource, ttl time.Duration, log *zap.Logger) *UserCache {
	return &UserCache{
		client: client,
		next:   next,
		ttl:    ttl,
		log:    log,
	}
}

// NewClient parses a redis:// URL and checks the server is reachable.
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (c *UserCache) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	key := userKey(userID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var user domain.User
		if err := json.Unmarshal(data, &user); err == nil {
			return &user, nil
		}
		c.log.Warn("dropping malformed cached user", zap.Int64("user_id", userID))
		_ = c.client.Del(ctx, key).Err()
	case !errors.Is(err, goredis.Nil):
		c.log.Warn("user cache read failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	user, err := c.next.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("user cache write failed", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	return user, nil
}

func userKey(userID int64) string {
	return userKeyPrefix + strconv.FormatInt(userID, 10)
}
