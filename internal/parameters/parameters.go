// Package parameters serves the per-translation configuration parameters
// (datasource.*) that a Translator reads once at construction.
package parameters

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/redis/go-redis/v9"

	dErrors "fastdrc/pkg/domain-errors"
	"fastdrc/pkg/platform/sentinel"
)

// Static is an in-memory parameter set.
type Static map[string]string

// Parameter returns the value for name.
func (s Static) Parameter(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// Hash is the part of the go-redis client the Redis loader needs.
type Hash interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// LoadRedis reads the parameter hash stored under key once. The returned
// store never goes back to Redis; a Translator built from it keeps the values
// it was started with.
func LoadRedis(ctx context.Context, client Hash, key string, logger *slog.Logger) (Static, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fields, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "reading translation parameters timed out").WithDetail(key)
		}
		return nil, dErrors.Wrap(errors.Join(sentinel.ErrUnavailable, err), dErrors.CodeUnavailable,
			"could not read translation parameters").WithDetail(key)
	}
	if len(fields) == 0 {
		return nil, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeConfiguration,
			"no translation parameters stored").WithDetail(key)
	}
	logger.InfoContext(ctx, "translation parameters loaded", "key", key, "count", len(fields))
	return Static(maps.Clone(fields)), nil
}
