// Package service contains the business logic sitting between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"strings"

	"sahayogi/internal/cache"
	"sahayogi/internal/models"
	"sahayogi/internal/repository"
)

// UserService provides account profile and preference business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID returns a user record, served cache-aside.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := cache.CacheAside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		u, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		user = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileInput is the editable portion of an account profile.
type ProfileInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Bio     string `json:"bio"`
	Avatar  string `json:"avatar"`
}

// UpdateProfile applies profile edits to the caller's account.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (*models.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Name is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = in.Name
	user.Phone = in.Phone
	user.Address = in.Address
	user.Bio = in.Bio
	user.Avatar = in.Avatar
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.UserKey(userID))
	return user, nil
}

// UpdatePreferences replaces the caller's accessibility preferences.
func (s *UserService) UpdatePreferences(ctx context.Context, userID uint, prefs models.UserPreferences) (*models.User, error) {
	switch prefs.FontSize {
	case models.FontSizeNormal, models.FontSizeLarge, models.FontSizeExtraLarge:
	default:
		return nil, models.NewValidationError("Unknown font size")
	}

	if err := s.userRepo.UpdatePreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.UserKey(userID))
	return s.userRepo.GetByID(ctx, userID)
}
