package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"darimaids/models"
	"darimaids/utils"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps sessions as JSON under "draft:<id>" with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, utils.DraftKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	if session.Draft == nil {
		session.Draft = models.NewBookingDraft()
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, utils.DraftKeyPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, utils.DraftKeyPrefix+sessionID, utils.InFlightKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *RedisStore) AcquireSubmit(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, utils.InFlightKeyPrefix+sessionID, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark submission in flight: %w", err)
	}
	return ok, nil
}

func (s *RedisStore) ReleaseSubmit(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, utils.InFlightKeyPrefix+sessionID).Err()
}

var _ SessionStore = (*RedisStore)(nil)
