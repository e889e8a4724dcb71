// internal/session/store_test.go
package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/errors"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewWithClient(client, logger.NewTestLogger(t))
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestStoreTokenRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// No session yet.
	_, err := store.Token(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTokenNotFound, err.(*errors.StandardError).Code)

	require.NoError(t, store.SaveToken(ctx, "bearer-abc", 0))
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bearer-abc", token)

	require.NoError(t, store.ClearToken(ctx))
	_, err = store.Token(ctx)
	assert.Error(t, err)
}

func TestStoreTokenExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveToken(ctx, "bearer-abc", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Token(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTokenNotFound, err.(*errors.StandardError).Code)
}

func TestStorePasswordMap(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePassword(ctx, "user-1", "p@ss1"))
	require.NoError(t, store.SavePassword(ctx, "user-2", "p@ss2"))

	password, err := store.Password(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "p@ss1", password)

	// Unknown user is empty, not an error.
	password, err = store.Password(ctx, "user-9")
	require.NoError(t, err)
	assert.Empty(t, password)

	all, err := store.Passwords(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"user-1": "p@ss1", "user-2": "p@ss2"}, all)

	require.NoError(t, store.DeletePassword(ctx, "user-1"))
	all, err = store.Passwords(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"user-2": "p@ss2"}, all)
}

func TestStoreFeeCacheRoundTrip(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	key := "Nigeria|Lagos|Ikeja|Ikeja City|Alausa"

	// Miss before anything is cached.
	_, ok, err := store.CachedFee(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	want := &models.Fee{Amount: 1500, Source: models.FeeSourceCityRegion}
	require.NoError(t, store.CacheFee(ctx, key, want, 5*time.Minute))

	fee, ok, err := store.CachedFee(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, *want, *fee)

	// Entries expire with their ttl.
	mr.FastForward(10 * time.Minute)
	_, ok, err = store.CachedFee(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreFeeCacheKeysStayOutOfPasswordScan(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePassword(ctx, "user-1", "p@ss1"))
	require.NoError(t, store.CacheFee(ctx, "Nigeria|Lagos|Ikeja|Ikeja City|Alausa",
		&models.Fee{Amount: 1500, Source: models.FeeSourceCityRegion}, 0))

	all, err := store.Passwords(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"user-1": "p@ss1"}, all)
}

func TestStoreMapsConnectionFailures(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewWithClient(client, logger.NewNoOpLogger())
	ctx := context.Background()

	mock.ExpectGet("session:token").SetErr(assert.AnError)
	_, err := store.Token(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStoreUnavailable, err.(*errors.StandardError).Code)

	mock.ExpectPing().SetErr(assert.AnError)
	err = store.Ping(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeStoreUnavailable, err.(*errors.StandardError).Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
