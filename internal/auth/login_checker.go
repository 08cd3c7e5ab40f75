package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrSessionExpired = errors.New("session expired")

// LoginChecker accepts a bearer token only while its redis session is alive.
type LoginChecker struct {
	tokens      *Tokens
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(tokens *Tokens, ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		tokens:      tokens,
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *LoginChecker) UserID(ctx context.Context, token string) (int64, error) {
	claims, err := c.tokens.Parse(token)
	if err != nil {
		return 0, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return 0, err
	}

	createdAtUnixStr, err := c.redisClient.Get(ctx, SessionKey(claims.SessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionExpired
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse session created at: %w", err)
	}
	if time.Since(time.Unix(createdAtUnix, 0)) > c.ttl {
		return 0, ErrSessionExpired
	}

	return userID, nil
}
