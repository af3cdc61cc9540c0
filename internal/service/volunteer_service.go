package service

import (
	"context"

	"sahayogi/internal/cache"
	"sahayogi/internal/models"
	"sahayogi/internal/repository"
)

// VolunteerService provides volunteer discovery and profile business logic.
type VolunteerService struct {
	volunteerRepo repository.VolunteerRepository
	userRepo      repository.UserRepository
}

// NewVolunteerService returns a new VolunteerService.
func NewVolunteerService(volunteerRepo repository.VolunteerRepository, userRepo repository.UserRepository) *VolunteerService {
	return &VolunteerService{
		volunteerRepo: volunteerRepo,
		userRepo:      userRepo,
	}
}

// Discover returns volunteer profiles matching the filter, best-rated first.
// The unfiltered directory is served cache-aside; filtered views always hit
// the database.
func (s *VolunteerService) Discover(ctx context.Context, filter repository.VolunteerFilter) ([]models.VolunteerProfile, error) {
	if filter == (repository.VolunteerFilter{}) {
		var profiles []models.VolunteerProfile
		err := cache.CacheAside(ctx, cache.VolunteerDirectoryKey(), &profiles, cache.VolunteerDirectoryTTL, func() error {
			var err error
			profiles, err = s.volunteerRepo.List(ctx, filter)
			return err
		})
		if err != nil {
			return nil, err
		}
		return profiles, nil
	}
	return s.volunteerRepo.List(ctx, filter)
}

// GetProfile returns the volunteer profile backing a user.
func (s *VolunteerService) GetProfile(ctx context.Context, userID uint) (*models.VolunteerProfile, error) {
	return s.volunteerRepo.GetByUserID(ctx, userID)
}

// ProfileUpdate is the editable portion of a volunteer profile. Bio is
// optional; when present it updates the backing user record.
type ProfileUpdate struct {
	Skills       []string            `json:"skills"`
	Availability models.Availability `json:"availability"`
	Bio          *string             `json:"bio"`
}

// UpdateProfile replaces the caller's skills and availability. Skill tags must
// be drawn from the request category enumeration.
func (s *VolunteerService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.VolunteerProfile, error) {
	for _, skill := range update.Skills {
		if !models.ValidCategory(models.RequestCategory(skill)) {
			return nil, models.NewValidationError("Unknown skill: " + skill)
		}
	}

	profile, err := s.volunteerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Skills = update.Skills
	profile.Availability = update.Availability
	if err := s.volunteerRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if update.Bio != nil {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		user.Bio = *update.Bio
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		cache.Invalidate(ctx, cache.UserKey(userID))
	}

	cache.Invalidate(ctx, cache.VolunteerDirectoryKey())
	return s.volunteerRepo.GetByUserID(ctx, userID)
}
