package repository

import (
	"context"
	"errors"
	"strings"

	"sahayogi/internal/models"

	"gorm.io/gorm"
)

// VolunteerFilter describes the predicates applied to volunteer discovery.
// The skill filter matches against the JSON-serialized skills column; the
// availability filter names one of the declared day/time buckets. Results are
// ordered by rating, highest first.
type VolunteerFilter struct {
	Search       string
	Skill        string
	Availability string
}

// VolunteerRepository defines the interface for volunteer profile data operations
type VolunteerRepository interface {
	Create(ctx context.Context, profile *models.VolunteerProfile) error
	GetByUserID(ctx context.Context, userID uint) (*models.VolunteerProfile, error)
	Update(ctx context.Context, profile *models.VolunteerProfile) error
	List(ctx context.Context, filter VolunteerFilter) ([]models.VolunteerProfile, error)
	IncrementCompleted(ctx context.Context, userID uint) error
}

// volunteerRepository implements VolunteerRepository
type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer profile repository
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) Create(ctx context.Context, profile *models.VolunteerProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *volunteerRepository) GetByUserID(ctx context.Context, userID uint) (*models.VolunteerProfile, error) {
	var profile models.VolunteerProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("VolunteerProfile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *volunteerRepository) Update(ctx context.Context, profile *models.VolunteerProfile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *volunteerRepository) List(ctx context.Context, filter VolunteerFilter) ([]models.VolunteerProfile, error) {
	var profiles []models.VolunteerProfile

	q := r.db.WithContext(ctx).
		Model(&models.VolunteerProfile{}).
		Joins("JOIN users ON users.id = volunteer_profiles.user_id").
		Preload("User")

	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(users.name) LIKE ? OR LOWER(users.bio) LIKE ?", needle, needle)
	}
	if filter.Skill != "" && filter.Skill != FilterAll {
		// Skills are stored as a JSON array of strings.
		q = q.Where("volunteer_profiles.skills LIKE ?", `%"`+filter.Skill+`"%`)
	}
	switch filter.Availability {
	case "", FilterAll:
	case "weekdays":
		q = q.Where("volunteer_profiles.avail_weekdays = ?", true)
	case "weekends":
		q = q.Where("volunteer_profiles.avail_weekends = ?", true)
	case "mornings":
		q = q.Where("volunteer_profiles.avail_mornings = ?", true)
	case "afternoons":
		q = q.Where("volunteer_profiles.avail_afternoons = ?", true)
	case "evenings":
		q = q.Where("volunteer_profiles.avail_evenings = ?", true)
	default:
		return nil, models.NewValidationError("Unknown availability filter")
	}

	if err := q.Order("volunteer_profiles.rating DESC").Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *volunteerRepository) IncrementCompleted(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.VolunteerProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("completed_requests", gorm.Expr("completed_requests + 1"))
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("VolunteerProfile", userID)
	}
	return nil
}
