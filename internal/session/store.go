// internal/session/store.go
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/config"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/errors"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

const (
	tokenKey       = "session:token"
	passwordPrefix = "credential:password:"
	feePrefix      = "feecache:"
)

// Store is the device-local key-value store backing the session: the
// bearer token for the API and the per-user password map shown to admins
// after account creation. It satisfies api.TokenSource.
type Store struct {
	client redis.UniversalClient
	log    logger.Logger
}

// New connects to the local store.
func New(cfg config.RedisConfig, log logger.Logger) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &Store{client: client, log: log}
}

// NewWithClient wraps an existing client, used by tests.
func NewWithClient(client redis.UniversalClient, log logger.Logger) *Store {
	return &Store{client: client, log: log}
}

// Ping verifies the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

// ==========================
// SESSION TOKEN
// ==========================

// SaveToken stores the bearer token. A zero ttl keeps it until sign-out.
func (s *Store) SaveToken(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, tokenKey, token, ttl).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// Token returns the stored bearer token. It is the api.TokenSource hook, so
// a missing token surfaces as a typed error rather than an empty string.
func (s *Store) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, tokenKey).Result()
	if err == redis.Nil {
		return "", errors.NewTokenNotFoundError()
	}
	if err != nil {
		return "", errors.NewStoreUnavailableError(err)
	}
	return token, nil
}

// ClearToken signs the session out locally.
func (s *Store) ClearToken(ctx context.Context) error {
	if err := s.client.Del(ctx, tokenKey).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// ==========================
// CREATED-USER PASSWORDS
// ==========================

// SavePassword records the server-generated password of a newly created
// user so the admin can hand it over later.
func (s *Store) SavePassword(ctx context.Context, userID, password string) error {
	if err := s.client.Set(ctx, passwordPrefix+userID, password, 0).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// Password returns the recorded password for a user id, or empty when none
// was recorded on this device.
func (s *Store) Password(ctx context.Context, userID string) (string, error) {
	password, err := s.client.Get(ctx, passwordPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.NewStoreUnavailableError(err)
	}
	return password, nil
}

// DeletePassword drops one recorded password.
func (s *Store) DeletePassword(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, passwordPrefix+userID).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// ==========================
// FEE CACHE
// ==========================

// CachedFee returns a previously resolved fee for a location key, with
// ok=false on a miss. It is the selector.FeeCache hook.
func (s *Store) CachedFee(ctx context.Context, key string) (*models.Fee, bool, error) {
	raw, err := s.client.Get(ctx, feePrefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewStoreUnavailableError(err)
	}
	var fee models.Fee
	if err := json.Unmarshal([]byte(raw), &fee); err != nil {
		return nil, false, errors.NewStoreUnavailableError(err)
	}
	return &fee, true, nil
}

// CacheFee stores a resolved fee under a location key for the given ttl.
func (s *Store) CacheFee(ctx context.Context, key string, fee *models.Fee, ttl time.Duration) error {
	raw, err := json.Marshal(fee)
	if err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	if err := s.client.Set(ctx, feePrefix+key, raw, ttl).Err(); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// Passwords returns every recorded user-id/password pair on the device.
func (s *Store) Passwords(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	iter := s.client.Scan(ctx, 0, passwordPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		password, err := s.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errors.NewStoreUnavailableError(err)
		}
		out[key[len(passwordPrefix):]] = password
	}
	if err := iter.Err(); err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}
	return out, nil
}
