package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
)

const profileKeyPrefix = "profile:"

// ProfileRepository implements repository.ProfileRepository using Redis.
type ProfileRepository struct {
	store store
}

// NewProfileRepository creates a new Redis-backed profile repository.
func NewProfileRepository(client *redis.Client, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		store: store{client: client, logger: logger},
	}
}

// Get retrieves a profile by user ID.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	if err := r.store.get(ctx, profileKeyPrefix+userID, "profile", userID, &p); err != nil {
		return nil, err
	}
	p.UserID = userID
	return &p, nil
}

// Save persists a profile.
func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	return r.store.set(ctx, profileKeyPrefix+profile.UserID, "profile", profile)
}
