package service

import (
	"context"
	"time"

	"sahayogi/internal/cache"
	"sahayogi/internal/middleware"
	"sahayogi/internal/models"
	"sahayogi/internal/observability"
	"sahayogi/internal/repository"
	"sahayogi/internal/validation"
)

// RequestService provides help-request lifecycle and query business logic.
type RequestService struct {
	requestRepo   repository.RequestRepository
	volunteerRepo repository.VolunteerRepository
	userRepo      repository.UserRepository
}

// NewRequestService returns a new RequestService.
func NewRequestService(requestRepo repository.RequestRepository, volunteerRepo repository.VolunteerRepository, userRepo repository.UserRepository) *RequestService {
	return &RequestService{
		requestRepo:   requestRepo,
		volunteerRepo: volunteerRepo,
		userRepo:      userRepo,
	}
}

// Create validates a submission and stores a new pending request owned by the
// elderly user.
func (s *RequestService) Create(ctx context.Context, elderlyID uint, in validation.RequestInput) (*models.HelpRequest, error) {
	user, err := s.userRepo.GetByID(ctx, elderlyID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleElderly {
		return nil, models.NewForbiddenError("Only elderly users can post help requests")
	}

	scheduledFor, fieldErrs := validation.ValidateRequestInput(in)
	if len(fieldErrs) > 0 {
		return nil, models.NewValidationError(fieldErrs.Error())
	}

	// A request opened from a volunteer's directory page is pre-targeted at
	// that volunteer but still enters the pool as pending.
	if in.VolunteerID != nil {
		target, err := s.userRepo.GetByID(ctx, *in.VolunteerID)
		if err != nil {
			return nil, err
		}
		if target.Role != models.RoleVolunteer {
			return nil, models.NewValidationError("Targeted user is not a volunteer")
		}
	}

	request := &models.HelpRequest{
		Title:        in.Title,
		Description:  in.Description,
		Category:     models.RequestCategory(in.Category),
		Urgency:      models.RequestUrgency(in.Urgency),
		Status:       models.RequestStatusPending,
		ScheduledFor: scheduledFor,
		ElderlyID:    elderlyID,
		VolunteerID:  in.VolunteerID,
		Address:      in.Address,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.SummaryKey(string(models.RoleElderly), elderlyID))
	return s.requestRepo.GetByID(ctx, request.ID)
}

// Get returns a single request with its elderly and volunteer users attached.
func (s *RequestService) Get(ctx context.Context, id uint) (*models.HelpRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

// List returns requests matching the filter, newest first. Role scoping is
// expressed through the filter: an elderly caller passes their own ElderlyID,
// a volunteer browsing open work passes Status pending.
func (s *RequestService) List(ctx context.Context, filter repository.RequestFilter) ([]models.HelpRequest, error) {
	return s.requestRepo.List(ctx, filter)
}

// StatusSummary is the dashboard breakdown of a user's requests. Closed
// aggregates completed and cancelled.
type StatusSummary struct {
	Pending   int64 `json:"pending"`
	Accepted  int64 `json:"accepted"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Closed    int64 `json:"closed"`
}

// Summary returns per-status request counts for a user's dashboard, scoped by
// role. Counts are served cache-aside with a short TTL.
func (s *RequestService) Summary(ctx context.Context, userID uint, role models.UserRole) (*StatusSummary, error) {
	filter := repository.RequestFilter{}
	switch role {
	case models.RoleElderly:
		filter.ElderlyID = userID
	case models.RoleVolunteer:
		filter.VolunteerID = userID
	default:
		return nil, models.NewValidationError("Unknown role")
	}

	var summary StatusSummary
	err := cache.CacheAside(ctx, cache.SummaryKey(string(role), userID), &summary, cache.SummaryTTL, func() error {
		counts, err := s.requestRepo.CountByStatus(ctx, filter)
		if err != nil {
			return err
		}
		summary = StatusSummary{
			Pending:   counts[models.RequestStatusPending],
			Accepted:  counts[models.RequestStatusAccepted],
			Completed: counts[models.RequestStatusCompleted],
			Cancelled: counts[models.RequestStatusCancelled],
		}
		summary.Closed = summary.Completed + summary.Cancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Accept assigns a pending request to a volunteer. The status guard in the
// repository ensures exactly one of two racing volunteers wins; the loser
// gets a conflict error and the winner's assignment is never overwritten.
func (s *RequestService) Accept(ctx context.Context, requestID, volunteerID uint) (*models.HelpRequest, error) {
	ctx, span := observability.StartSpan(ctx, "request.accept")
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleVolunteer {
		return nil, models.NewForbiddenError("Only volunteers can accept help requests")
	}

	err = s.requestRepo.TransitionStatus(ctx, requestID,
		models.RequestStatusPending, models.RequestStatusAccepted,
		map[string]interface{}{"volunteer_id": volunteerID})
	if err != nil {
		middleware.RequestTransitions.WithLabelValues("accept", outcomeLabel(err)).Inc()
		observability.RecordError(ctx, err)
		return nil, err
	}
	middleware.RequestTransitions.WithLabelValues("accept", "ok").Inc()

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.invalidateSummaries(ctx, request)
	return request, nil
}

// Cancel withdraws a pending request. Only the owning elderly user may cancel,
// and only while no volunteer has accepted.
func (s *RequestService) Cancel(ctx context.Context, requestID, userID uint) (*models.HelpRequest, error) {
	ctx, span := observability.StartSpan(ctx, "request.cancel")
	defer span.End()

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ElderlyID != userID {
		return nil, models.NewForbiddenError("You can only cancel your own requests")
	}

	err = s.requestRepo.TransitionStatus(ctx, requestID,
		models.RequestStatusPending, models.RequestStatusCancelled, nil)
	if err != nil {
		middleware.RequestTransitions.WithLabelValues("cancel", outcomeLabel(err)).Inc()
		observability.RecordError(ctx, err)
		return nil, err
	}
	middleware.RequestTransitions.WithLabelValues("cancel", "ok").Inc()

	request, err = s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.invalidateSummaries(ctx, request)
	return request, nil
}

// Complete marks an accepted request as fulfilled and records the completion
// time. Either the assigned volunteer or the owning elderly user may complete.
// The assigned volunteer's completed-request tally is bumped on success.
func (s *RequestService) Complete(ctx context.Context, requestID, userID uint) (*models.HelpRequest, error) {
	ctx, span := observability.StartSpan(ctx, "request.complete")
	defer span.End()

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	assigned := request.VolunteerID != nil && *request.VolunteerID == userID
	if !assigned && request.ElderlyID != userID {
		return nil, models.NewForbiddenError("Only the assigned volunteer or the request owner can complete a request")
	}

	now := time.Now().UTC()
	err = s.requestRepo.TransitionStatus(ctx, requestID,
		models.RequestStatusAccepted, models.RequestStatusCompleted,
		map[string]interface{}{"completed_at": now})
	if err != nil {
		middleware.RequestTransitions.WithLabelValues("complete", outcomeLabel(err)).Inc()
		observability.RecordError(ctx, err)
		return nil, err
	}
	middleware.RequestTransitions.WithLabelValues("complete", "ok").Inc()

	if request.VolunteerID != nil {
		if err := s.volunteerRepo.IncrementCompleted(ctx, *request.VolunteerID); err != nil {
			observability.RecordError(ctx, err)
		}
	}

	request, err = s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.invalidateSummaries(ctx, request)
	return request, nil
}

func (s *RequestService) invalidateSummaries(ctx context.Context, request *models.HelpRequest) {
	keys := []string{cache.SummaryKey(string(models.RoleElderly), request.ElderlyID)}
	if request.VolunteerID != nil {
		keys = append(keys, cache.SummaryKey(string(models.RoleVolunteer), *request.VolunteerID))
	}
	cache.Invalidate(ctx, keys...)
}

func outcomeLabel(err error) string {
	if appErr, ok := err.(*models.AppError); ok {
		switch appErr.Code {
		case "CONFLICT":
			return "conflict"
		case "NOT_FOUND":
			return "not_found"
		}
	}
	return "error"
}
