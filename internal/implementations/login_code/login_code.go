package logincode

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	c "reemind/internal/core/domain/common"
	e "reemind/internal/core/domain/errors"
	"reemind/internal/core/domain/owner"
	"time"

	"github.com/go-redis/redis/v9"
)

const keyPrefix = "login-code::"

type Generator struct{}

func NewGenerator() *Generator {
	rand.Seed(time.Now().UnixNano())
	return &Generator{}
}

func (g *Generator) GenerateLoginCode() owner.LoginCode {
	return owner.LoginCode(fmt.Sprintf("%06d", rand.Intn(1_000_000)))
}

// RedisRepository stores one login code per email address. A new code
// overwrites the previous one, Redis TTL handles expiry.
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
	email c.Email,
	code owner.LoginCode,
	validFor time.Duration,
) error {
	return r.redisClient.Set(ctx, keyPrefix+string(email), string(code), validFor).Err()
}

func (r *RedisRepository) Consume(ctx context.Context, email c.Email, code owner.LoginCode) error {
	stored, err := r.redisClient.Get(ctx, keyPrefix+string(email)).Result()
	if errors.Is(err, redis.Nil) {
		return owner.ErrLoginCodeInvalid
	}
	if err != nil {
		return err
	}
	if stored != string(code) {
		return owner.ErrLoginCodeInvalid
	}
	return r.redisClient.Del(ctx, keyPrefix+string(email)).Err()
}
