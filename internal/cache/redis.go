package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisKeyPrefix = "gymlog-cache||"
	// generation counters outlive any cached summary
	generationTTL = 7 * 24 * time.Hour
)

// KEYS: the value key, then one generation key per tag, then one tag key per tag.
// ARGV: the value, the ttl in milliseconds, then the expected generation per tag.
var setIfCurrentScript = redis.NewScript(`
local n = (#KEYS - 1) / 2
for i = 1, n do
	local gen = tonumber(redis.call("GET", KEYS[1 + i]) or "0")
	if gen ~= tonumber(ARGV[2 + i]) then
		return 0
	end
end
local ttl = tonumber(ARGV[2])
if ttl > 0 then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ttl)
else
	redis.call("SET", KEYS[1], ARGV[1])
end
for i = 1, n do
	redis.call("SADD", KEYS[1 + n + i], KEYS[1])
	if ttl > 0 then
		redis.call("PEXPIRE", KEYS[1 + n + i], ttl)
	end
end
return 1
`)

// RedisStore is the server side cache of computed summaries. Each tag is a
// redis set holding the keys that depend on it.
type RedisStore struct {
	redisClient *redis.Client
	prefix      string
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		prefix:      redisKeyPrefix,
	}
}

// ForOwner scopes both keys and tags to a single user.
func (s *RedisStore) ForOwner(ownerID int64) *RedisStore {
	return &RedisStore{
		redisClient: s.redisClient,
		prefix:      redisKeyPrefix + "u" + strconv.FormatInt(ownerID, 10) + "||",
	}
}

func (s *RedisStore) Key(key string) string {
	return s.prefix + key
}

func (s *RedisStore) TagKey(tag Tag) string {
	return s.prefix + "tag||" + string(tag)
}

func (s *RedisStore) GenerationKey(tag Tag) string {
	return s.prefix + "gen||" + string(tag)
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.redisClient.Get(ctx, s.Key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...Tag) error {
	fullKey := s.Key(key)
	if err := s.redisClient.Set(ctx, fullKey, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	for _, tag := range tags {
		tagKey := s.TagKey(tag)
		if err := s.redisClient.SAdd(ctx, tagKey, fullKey).Err(); err != nil {
			return fmt.Errorf("redis tag %s with %s: %w", key, tag, err)
		}
		if ttl > 0 {
			if err := s.redisClient.Expire(ctx, tagKey, ttl).Err(); err != nil {
				return fmt.Errorf("redis expire tag %s: %w", tag, err)
			}
		}
	}

	return nil
}

func (s *RedisStore) Generation(ctx context.Context, tags ...Tag) (Generation, error) {
	g := newGeneration(tags)
	if len(tags) == 0 {
		return g, nil
	}

	genKeys := make([]string, len(tags))
	for i, tag := range tags {
		genKeys[i] = s.GenerationKey(tag)
	}
	vals, err := s.redisClient.MGet(ctx, genKeys...).Result()
	if err != nil {
		return Generation{}, fmt.Errorf("redis generations: %w", err)
	}

	for i, val := range vals {
		if val == nil {
			continue
		}
		str, ok := val.(string)
		if !ok {
			return Generation{}, fmt.Errorf("redis generation of %s: unexpected %T", tags[i], val)
		}
		if g.counts[i], err = strconv.ParseInt(str, 10, 64); err != nil {
			return Generation{}, fmt.Errorf("redis generation of %s: %w", tags[i], err)
		}
	}

	return g, nil
}

// SetIfCurrent checks gen and stores the value in one script, so a concurrent
// Invalidate either sees the new key or makes the script refuse it.
func (s *RedisStore) SetIfCurrent(ctx context.Context, key string, value []byte, ttl time.Duration, gen Generation) (bool, error) {
	tags := gen.Tags()
	keys := make([]string, 0, 1+2*len(tags))
	keys = append(keys, s.Key(key))
	for _, tag := range tags {
		keys = append(keys, s.GenerationKey(tag))
	}
	for _, tag := range tags {
		keys = append(keys, s.TagKey(tag))
	}

	args := make([]interface{}, 0, 2+len(tags))
	args = append(args, value, ttl.Milliseconds())
	for _, count := range gen.counts {
		args = append(args, count)
	}

	stored, err := setIfCurrentScript.Run(ctx, s.redisClient, keys, args...).Int()
	if err != nil {
		return false, fmt.Errorf("redis set %s if current: %w", key, err)
	}
	return stored == 1, nil
}

func (s *RedisStore) Invalidate(ctx context.Context, tags ...Tag) (int, error) {
	removed := 0
	for _, tag := range tags {
		// bump first: a value checked against the old generation is already in the tag set
		genKey := s.GenerationKey(tag)
		if err := s.redisClient.Incr(ctx, genKey).Err(); err != nil {
			return removed, fmt.Errorf("redis bump generation of %s: %w", tag, err)
		}
		if err := s.redisClient.Expire(ctx, genKey, generationTTL).Err(); err != nil {
			return removed, fmt.Errorf("redis expire generation of %s: %w", tag, err)
		}

		tagKey := s.TagKey(tag)
		members, err := s.redisClient.SMembers(ctx, tagKey).Result()
		if err != nil {
			return removed, fmt.Errorf("redis members of %s: %w", tag, err)
		}

		if len(members) > 0 {
			n, err := s.redisClient.Del(ctx, members...).Result()
			if err != nil {
				return removed, fmt.Errorf("redis del keys of %s: %w", tag, err)
			}
			removed += int(n)
		}

		if err := s.redisClient.Del(ctx, tagKey).Err(); err != nil {
			return removed, fmt.Errorf("redis del tag %s: %w", tag, err)
		}
	}

	return removed, nil
}

func (s *RedisStore) InvalidateOwner(ctx context.Context, ownerID int64, tags ...Tag) (int, error) {
	return s.ForOwner(ownerID).Invalidate(ctx, tags...)
}

func (s *RedisStore) GetOwner(ctx context.Context, ownerID int64, key string) ([]byte, error) {
	return s.ForOwner(ownerID).Get(ctx, key)
}

func (s *RedisStore) SetOwner(ctx context.Context, ownerID int64, key string, value []byte, ttl time.Duration, tags ...Tag) error {
	return s.ForOwner(ownerID).Set(ctx, key, value, ttl, tags...)
}

func (s *RedisStore) GenerationOwner(ctx context.Context, ownerID int64, tags ...Tag) (Generation, error) {
	return s.ForOwner(ownerID).Generation(ctx, tags...)
}

func (s *RedisStore) SetOwnerIfCurrent(ctx context.Context, ownerID int64, key string, value []byte, ttl time.Duration, gen Generation) (bool, error) {
	return s.ForOwner(ownerID).SetIfCurrent(ctx, key, value, ttl, gen)
}
