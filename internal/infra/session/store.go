package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xavierca1/handover-portal/internal/entity"
)

var ErrSessionBackend = errors.New("session backend unavailable")

const defaultTTL = 30 * time.Minute

// Store keeps one WorkflowState per session in Redis, keyed by the session
// cookie value. The TTL bounds the whole workflow's lifetime; every Put
// refreshes it.
type Store struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewStore(redisClient redis.UniversalClient, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = "wf"
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		redis:  redisClient,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *Store) key(sessionID string) string {
	return s.prefix + ":" + sessionID
}

// Get returns the session's state, or a fresh LOGIN state when the session
// has no record yet (first access, or expired).
func (s *Store) Get(ctx context.Context, sessionID string) (*entity.WorkflowState, error) {
	data, err := s.redis.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewWorkflowState(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionBackend, err)
	}

	var state entity.WorkflowState
	if err := json.Unmarshal(data, &state); err != nil {
		// Undecodable record: treat the session as new rather than bricking it.
		return entity.NewWorkflowState(), nil
	}
	return &state, nil
}

func (s *Store) Put(ctx context.Context, sessionID string, state *entity.WorkflowState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode workflow state: %w", err)
	}

	if err := s.redis.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionBackend, err)
	}
	return nil
}

// Delete drops the session record. Used when a finished workflow is cleaned up.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionBackend, err)
	}
	return nil
}
