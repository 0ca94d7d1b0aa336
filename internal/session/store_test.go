// internal/session/store_test.go
package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "jobboard-client/internal/common/errors"
)

func TestMemoryStore_MarkAndCheck(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	applied, err := store.HasApplied(ctx, "job-1")
	require.NoError(t, err)
	assert.False(t, applied)

	require.NoError(t, store.MarkApplied(ctx, "job-1"))

	applied, err = store.HasApplied(ctx, "job-1")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = store.HasApplied(ctx, "job-2")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestMemoryStore_ResetClearsEverything(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.MarkApplied(ctx, "job-1"))
	require.NoError(t, store.MarkApplied(ctx, "job-2"))
	require.NoError(t, store.Reset(ctx))

	for _, jobID := range []string{"job-1", "job-2"} {
		applied, err := store.HasApplied(ctx, jobID)
		require.NoError(t, err)
		assert.False(t, applied, "job %s should be gone after reset", jobID)
	}
}

func TestRedisStore_MarkAndCheck(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, "session:test:applied")
	defer store.Close()

	require.NoError(t, store.MarkApplied(ctx, "job-1"))

	applied, err := store.HasApplied(ctx, "job-1")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = store.HasApplied(ctx, "job-2")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestRedisStore_ResetDeletesKey(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreWithClient(client, "session:test:applied")
	defer store.Close()

	require.NoError(t, store.MarkApplied(ctx, "job-1"))
	require.NoError(t, store.Reset(ctx))

	assert.False(t, mr.Exists("session:test:applied"))

	applied, err := store.HasApplied(ctx, "job-1")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestRedisStore_ErrorsWrapAsSessionStoreErrors(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	store := NewRedisStoreWithClient(client, "session:test:applied")

	mock.ExpectSAdd("session:test:applied", "job-1").SetErr(assert.AnError)

	err := store.MarkApplied(ctx, "job-1")
	require.Error(t, err)
	assert.True(t, commonerrors.IsCode(err, commonerrors.ErrCodeSessionStoreFailed))

	mock.ExpectSIsMember("session:test:applied", "job-1").SetErr(assert.AnError)

	_, err = store.HasApplied(ctx, "job-1")
	require.Error(t, err)
	assert.True(t, commonerrors.IsCode(err, commonerrors.ErrCodeSessionStoreFailed))

	require.NoError(t, mock.ExpectationsWereMet())
}
