package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/domain"
	"github.com/muhammadnaveedsaleem774/noorfab/internal/repository"
	apperrors "github.com/muhammadnaveedsaleem774/noorfab/pkg/errors"
)

// UpdateProfileInput holds the editable profile fields. Empty fields are
// written as-is; partial updates are the handler's concern.
type UpdateProfileInput struct {
	FullName     string `json:"full_name" validate:"required,min=1,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"max=32"`
	ProfileImage string `json:"profile_image" validate:"max=512"`
}

// ProfileService manages the user-editable account profile.
type ProfileService struct {
	repo   repository.ProfileRepository
	logger *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.ProfileRepository, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		repo:   repo,
		logger: logger,
	}
}

// Get retrieves the profile for a user. A missing profile reads as an empty one.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Profile{UserID: userID}, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

// Update overwrites the user's profile with the given fields.
func (s *ProfileService) Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.Profile, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	profile := &domain.Profile{
		UserID:       userID,
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		ProfileImage: input.ProfileImage,
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	s.logger.InfoContext(ctx, "profile updated", slog.String("user_id", userID))
	return profile, nil
}
