package parameters

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "fastdrc/pkg/domain-errors"
	"fastdrc/pkg/platform/sentinel"
)

type fakeHash struct {
	fields map[string]string
	err    error
	calls  int
}

func (f *fakeHash) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	f.calls++
	cmd := redis.NewMapStringStringCmd(ctx, "hgetall", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	cmd.SetVal(f.fields)
	return cmd
}

func TestStatic(t *testing.T) {
	s := Static{"datasource.sql": "SELECT 1"}

	v, ok := s.Parameter("datasource.sql")
	assert.True(t, ok)
	assert.Equal(t, "SELECT 1", v)

	_, ok = s.Parameter("datasource.url")
	assert.False(t, ok)
}

func TestLoadRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the hash once", func(t *testing.T) {
		hash := &fakeHash{fields: map[string]string{"datasource.url": "postgres://db/drc"}}
		store, err := LoadRedis(ctx, hash, "k", nil)
		require.NoError(t, err)

		hash.fields["datasource.url"] = "changed"
		v, ok := store.Parameter("datasource.url")
		assert.True(t, ok)
		assert.Equal(t, "postgres://db/drc", v)
		assert.Equal(t, 1, hash.calls)
	})

	t.Run("empty hash is a configuration error", func(t *testing.T) {
		_, err := LoadRedis(ctx, &fakeHash{fields: map[string]string{}}, "missing", nil)
		assert.True(t, dErrors.Is(err, dErrors.CodeConfiguration))
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("redis failure is unavailable", func(t *testing.T) {
		_, err := LoadRedis(ctx, &fakeHash{err: errors.New("dial tcp: connection refused")}, "k", nil)
		assert.True(t, dErrors.Is(err, dErrors.CodeUnavailable))
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("deadline is a timeout", func(t *testing.T) {
		_, err := LoadRedis(ctx, &fakeHash{err: context.DeadlineExceeded}, "k", nil)
		assert.True(t, dErrors.Is(err, dErrors.CodeTimeout))
	})
}
