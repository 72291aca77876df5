package session

import (
	"context"
	"errors"
	"math/rand"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/owner"
	"time"

	c "reemind/internal/core/domain/common"

	"github.com/go-redis/redis/v9"
)

const keyPrefix = "session::"

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	rand.Seed(time.Now().UnixNano())
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GenerateSessionToken() owner.SessionToken {
	b := make([]rune, 32)
	for i := range b {
		b[i] = g.chars[rand.Intn(len(g.chars))]
	}
	return owner.SessionToken(b)
}

// RedisRepository stores session tokens in Redis with a TTL, so sessions
// expire without any cleanup job.
type RedisRepository struct {
	redisClient *redis.Client
}

func NewRedisRepository(redisClient *redis.Client) *RedisRepository {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	return &RedisRepository{redisClient: redisClient}
}

func (r *RedisRepository) Create(
	ctx context.Context,
	token owner.SessionToken,
	email c.Email,
	validFor time.Duration,
) error {
	return r.redisClient.Set(ctx, keyPrefix+string(token), string(email), validFor).Err()
}

func (r *RedisRepository) GetEmailByToken(
	ctx context.Context,
	token owner.SessionToken,
) (email c.Email, err error) {
	value, err := r.redisClient.Get(ctx, keyPrefix+string(token)).Result()
	if errors.Is(err, redis.Nil) {
		return email, owner.ErrSessionDoesNotExist
	}
	if err != nil {
		return email, err
	}
	return c.Email(value), nil
}

func (r *RedisRepository) Delete(ctx context.Context, token owner.SessionToken) error {
	return r.redisClient.Del(ctx, keyPrefix+string(token)).Err()
}
