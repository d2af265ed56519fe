package auth

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	nowFunc     func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		nowFunc:     time.Now,
	}
}

// IsLogged resolves the token to the logged user id.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (_ int, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "loginChecker.isLogged")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	userID, createdAt, err := decodeSession(cmd.Val())
	if err != nil {
		return 0, false, err
	}

	if c.nowFunc().Sub(createdAt) > c.ttl {
		return 0, false, nil
	}

	return userID, true, nil
}
