// Package cache holds short-lived booking state in Redis.
package cache

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"hospital-booking/internal/config"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCodeExpired  = errors.New("verification code expired or not issued")
	ErrCodeMismatch = errors.New("verification code does not match")
	ErrTooManyTries = errors.New("too many verification attempts")
)

// MaxAttempts is how many wrong codes are tolerated before the code is
// discarded.
const MaxAttempts = 5

// NewRedis opens a client and pings it.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Network:  "tcp",
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// VerificationStore issues and checks the email codes that confirm a
// booking.
type VerificationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVerificationStore(client *redis.Client, ttl time.Duration) *VerificationStore {
	return &VerificationStore{client: client, ttl: ttl}
}

func codeKey(appointmentID uint) string {
	return fmt.Sprintf("booking:verify:%d", appointmentID)
}

func attemptsKey(appointmentID uint) string {
	return fmt.Sprintf("booking:verify:%d:attempts", appointmentID)
}

// Issue stores a fresh six digit code for the appointment, replacing any
// earlier one.
func (s *VerificationStore) Issue(ctx context.Context, appointmentID uint) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, codeKey(appointmentID), code, s.ttl)
	pipe.Del(ctx, attemptsKey(appointmentID))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}
	return code, nil
}

// Check compares code with the stored one. A match consumes the code.
func (s *VerificationStore) Check(ctx context.Context, appointmentID uint, code string) error {
	stored, err := s.client.Get(ctx, codeKey(appointmentID)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeExpired
	}
	if err != nil {
		return err
	}

	if stored != code {
		tries, err := s.client.Incr(ctx, attemptsKey(appointmentID)).Result()
		if err != nil {
			return err
		}
		s.client.Expire(ctx, attemptsKey(appointmentID), s.ttl)
		if tries >= MaxAttempts {
			s.client.Del(ctx, codeKey(appointmentID), attemptsKey(appointmentID))
			return ErrTooManyTries
		}
		return ErrCodeMismatch
	}

	return s.client.Del(ctx, codeKey(appointmentID), attemptsKey(appointmentID)).Err()
}

// Revoke drops any outstanding code, e.g. when the booking is cancelled.
func (s *VerificationStore) Revoke(ctx context.Context, appointmentID uint) error {
	return s.client.Del(ctx, codeKey(appointmentID), attemptsKey(appointmentID)).Err()
}
