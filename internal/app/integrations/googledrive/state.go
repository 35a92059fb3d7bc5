package googledrive

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "yolo-transcript/internal/app/errors"
)

// DefaultStateTTL bounds how long a consent URL stays usable
const DefaultStateTTL = 10 * time.Minute

// StateStore maps OAuth state tokens to the user who started the flow
type StateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStateStore creates a Redis-backed state store
func NewStateStore(client *redis.Client, prefix string, ttl time.Duration) *StateStore {
	if prefix == "" {
		prefix = "yolo:oauth-state"
	}
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	return &StateStore{client: client, prefix: prefix, ttl: ttl}
}

// Issue generates a random state bound to userID
func (s *StateStore) Issue(ctx context.Context, userID string) (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", apperrors.Wrap(err, "generate oauth state")
	}
	state := base64.RawURLEncoding.EncodeToString(buf)
	if err := s.client.Set(ctx, s.key(state), userID, s.ttl).Err(); err != nil {
		return "", apperrors.Wrap(err, "store oauth state")
	}
	return state, nil
}

// Consume returns the user bound to state and deletes it. Unknown or
// expired states return errors.ErrUnknownState.
func (s *StateStore) Consume(ctx context.Context, state string) (string, error) {
	if state == "" {
		return "", apperrors.ErrUnknownState
	}
	userID, err := s.client.GetDel(ctx, s.key(state)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrUnknownState
	}
	if err != nil {
		return "", apperrors.Wrap(err, "load oauth state")
	}
	return userID, nil
}

func (s *StateStore) key(state string) string {
	return s.prefix + ":" + state
}
