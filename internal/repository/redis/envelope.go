package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
)

// schemaVersion is the current persisted-record schema version. Records with
// an unknown version are discarded on read rather than shape-guessed.
const schemaVersion = 1

// envelope is the shared record shape for every per-user store: the state
// payload, a schema version, and the write timestamp in epoch milliseconds.
// Cart reads use SavedAt to lazily enforce the expiry window.
type envelope struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
	SavedAt int64           `json:"saved_at"`
}

// store is the envelope codec shared by the cart, wishlist, and profile
// repositories. maxAge zero means records never expire.
type store struct {
	client *redis.Client
	logger *slog.Logger
	maxAge time.Duration
}

// get loads and decodes the envelope at key into state. A missing key returns
// a not-found error. Malformed payloads, unknown schema versions, and records
// older than maxAge are logged, proactively deleted, and reported as absent so
// the caller falls back to its typed default.
func (s *store) get(ctx context.Context, key, resource, id string, state any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return apperrors.NotFound(resource, id)
		}
		return fmt.Errorf("redis get %s: %w", resource, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return s.discard(ctx, key, resource, id, "malformed payload", err)
	}
	if env.Version != schemaVersion {
		return s.discard(ctx, key, resource, id,
			fmt.Sprintf("unsupported schema version %d", env.Version), nil)
	}
	if s.maxAge > 0 && env.SavedAt > 0 {
		age := time.Since(time.UnixMilli(env.SavedAt))
		if age > s.maxAge {
			return s.discard(ctx, key, resource, id,
				fmt.Sprintf("expired %s ago", (age - s.maxAge).Round(time.Second)), nil)
		}
	}

	if err := json.Unmarshal(env.State, state); err != nil {
		return s.discard(ctx, key, resource, id, "malformed state", err)
	}

	return nil
}

// set encodes state into a versioned envelope and writes it at key. When the
// store has a maxAge, the key also gets a matching Redis TTL so abandoned
// records are eventually reclaimed even if never read again.
func (s *store) set(ctx context.Context, key, resource string, state any) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", resource, err)
	}

	env := envelope{
		State:   raw,
		Version: schemaVersion,
		SavedAt: time.Now().UnixMilli(),
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", resource, err)
	}

	if err := s.client.Set(ctx, key, data, s.maxAge).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", resource, err)
	}

	return nil
}

// remove deletes the record at key.
func (s *store) remove(ctx context.Context, key, resource string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", resource, err)
	}
	return nil
}

// discard logs why a stored record is unusable, deletes it, and reports the
// record as absent.
func (s *store) discard(ctx context.Context, key, resource, id, reason string, cause error) error {
	attrs := []any{
		slog.String("key", key),
		slog.String("reason", reason),
	}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	s.logger.WarnContext(ctx, "discarding stored "+resource, attrs...)

	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WarnContext(ctx, "failed to delete stale "+resource,
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	return apperrors.NotFound(resource, id)
}
