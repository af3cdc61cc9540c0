package repository

import (
	"context"
	"errors"
	"strings"

	"sahayogi/internal/models"

	"gorm.io/gorm"
)

// FilterAll is the sentinel that disables a category or urgency predicate.
const FilterAll = "all"

// RequestFilter describes the composable predicates applied to a request
// listing. Zero values (and the "all" sentinel) disable their predicate; all
// active predicates are combined with AND. Results are always ordered by
// creation time, newest first.
type RequestFilter struct {
	ElderlyID   uint
	VolunteerID uint
	Status      models.RequestStatus
	Category    string
	Urgency     string
	Search      string
}

// RequestRepository defines the interface for help request data operations
type RequestRepository interface {
	Create(ctx context.Context, request *models.HelpRequest) error
	GetByID(ctx context.Context, id uint) (*models.HelpRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]models.HelpRequest, error)
	CountByStatus(ctx context.Context, filter RequestFilter) (map[models.RequestStatus]int64, error)
	// TransitionStatus performs a guarded, atomic status transition: the
	// update only applies while the stored status still equals from. A
	// request that advanced concurrently yields a conflict error.
	TransitionStatus(ctx context.Context, id uint, from, to models.RequestStatus, updates map[string]interface{}) error
}

// requestRepository implements RequestRepository
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new help request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.HelpRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (*models.HelpRequest, error) {
	var request models.HelpRequest
	if err := r.db.WithContext(ctx).
		Preload("Elderly").
		Preload("Volunteer").
		First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func applyRequestFilter(q *gorm.DB, filter RequestFilter) *gorm.DB {
	if filter.ElderlyID != 0 {
		q = q.Where("elderly_id = ?", filter.ElderlyID)
	}
	if filter.VolunteerID != 0 {
		q = q.Where("volunteer_id = ?", filter.VolunteerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" && filter.Category != FilterAll {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Urgency != "" && filter.Urgency != FilterAll {
		q = q.Where("urgency = ?", filter.Urgency)
	}
	if filter.Search != "" {
		// Substring match over title and description only; category and
		// location are deliberately not searched.
		needle := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}
	return q
}

func (r *requestRepository) List(ctx context.Context, filter RequestFilter) ([]models.HelpRequest, error) {
	var requests []models.HelpRequest
	q := applyRequestFilter(r.db.WithContext(ctx), filter)
	if err := q.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *requestRepository) CountByStatus(ctx context.Context, filter RequestFilter) (map[models.RequestStatus]int64, error) {
	type row struct {
		Status models.RequestStatus
		N      int64
	}
	var rows []row

	q := applyRequestFilter(r.db.WithContext(ctx).Model(&models.HelpRequest{}), filter)
	if err := q.Select("status, COUNT(*) AS n").Group("status").Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	counts := make(map[models.RequestStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.N
	}
	return counts, nil
}

func (r *requestRepository) TransitionStatus(ctx context.Context, id uint, from, to models.RequestStatus, updates map[string]interface{}) error {
	values := map[string]interface{}{"status": to}
	for k, v := range updates {
		values[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&models.HelpRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(values)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a vanished request from one whose status moved on.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.HelpRequest{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		if count == 0 {
			return models.NewNotFoundError("Request", id)
		}
		return models.NewConflictError("Request is no longer " + string(from))
	}
	return nil
}
