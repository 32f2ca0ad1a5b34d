// Package otp keeps short-lived registration codes in Redis.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"residesk/internal/pkg/config"
	"residesk/internal/pkg/errs"
)

var ErrTooManyAttempts = errs.New("too many otp attempts")

type Store struct {
	client      *redis.Client
	ttl         time.Duration
	maxAttempts int
}

func NewStore(client *redis.Client, cfg config.OTPConfig) *Store {
	return &Store{
		client:      client,
		ttl:         cfg.TTL,
		maxAttempts: cfg.MaxAttempts,
	}
}

func codeKey(email string) string     { return "otp:code:" + email }
func attemptsKey(email string) string { return "otp:attempts:" + email }

// Issue generates a fresh 6-digit code and stores it under the email with the
// configured TTL. Re-issuing replaces the previous code and resets the
// attempt counter.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate otp")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, codeKey(email), code, s.ttl)
	pipe.Del(ctx, attemptsKey(email))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", errs.Wrap(err, "failed to store otp")
	}
	return code, nil
}

// Verify consumes the code on success. Each failed guess bumps a counter
// sharing the code's TTL; past maxAttempts the code is burned even if the
// right guess arrives later.
func (s *Store) Verify(ctx context.Context, email, code string) (bool, error) {
	attempts, err := s.client.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to count otp attempt")
	}
	if attempts == 1 {
		s.client.Expire(ctx, attemptsKey(email), s.ttl)
	}
	if attempts > int64(s.maxAttempts) {
		s.client.Del(ctx, codeKey(email))
		return false, ErrTooManyAttempts
	}

	stored, err := s.client.Get(ctx, codeKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errs.Wrap(err, "failed to read otp")
	}
	if stored != code {
		return false, nil
	}

	s.client.Del(ctx, codeKey(email), attemptsKey(email))
	return true, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}
