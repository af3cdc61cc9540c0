package service

import (
	"context"
	"testing"

	"sahayogi/internal/models"
	"sahayogi/internal/repository"
)

// assertErrCode fails the test unless err is an AppError carrying the code.
func assertErrCode(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := err.(*models.AppError)
	if !ok {
		t.Fatalf("expected *models.AppError with code %s, got %v", code, err)
	}
	if appErr.Code != code {
		t.Fatalf("error code = %s, want %s", appErr.Code, code)
	}
}

type requestRepoStub struct {
	createFn           func(context.Context, *models.HelpRequest) error
	getByIDFn          func(context.Context, uint) (*models.HelpRequest, error)
	listFn             func(context.Context, repository.RequestFilter) ([]models.HelpRequest, error)
	countByStatusFn    func(context.Context, repository.RequestFilter) (map[models.RequestStatus]int64, error)
	transitionStatusFn func(context.Context, uint, models.RequestStatus, models.RequestStatus, map[string]interface{}) error
}

func (s *requestRepoStub) Create(ctx context.Context, request *models.HelpRequest) error {
	return s.createFn(ctx, request)
}
func (s *requestRepoStub) GetByID(ctx context.Context, id uint) (*models.HelpRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *requestRepoStub) List(ctx context.Context, filter repository.RequestFilter) ([]models.HelpRequest, error) {
	return s.listFn(ctx, filter)
}
func (s *requestRepoStub) CountByStatus(ctx context.Context, filter repository.RequestFilter) (map[models.RequestStatus]int64, error) {
	return s.countByStatusFn(ctx, filter)
}
func (s *requestRepoStub) TransitionStatus(ctx context.Context, id uint, from, to models.RequestStatus, updates map[string]interface{}) error {
	return s.transitionStatusFn(ctx, id, from, to, updates)
}

type volunteerRepoStub struct {
	createFn             func(context.Context, *models.VolunteerProfile) error
	getByUserIDFn        func(context.Context, uint) (*models.VolunteerProfile, error)
	updateFn             func(context.Context, *models.VolunteerProfile) error
	listFn               func(context.Context, repository.VolunteerFilter) ([]models.VolunteerProfile, error)
	incrementCompletedFn func(context.Context, uint) error
}

func (s *volunteerRepoStub) Create(ctx context.Context, profile *models.VolunteerProfile) error {
	return s.createFn(ctx, profile)
}
func (s *volunteerRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.VolunteerProfile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *volunteerRepoStub) Update(ctx context.Context, profile *models.VolunteerProfile) error {
	return s.updateFn(ctx, profile)
}
func (s *volunteerRepoStub) List(ctx context.Context, filter repository.VolunteerFilter) ([]models.VolunteerProfile, error) {
	return s.listFn(ctx, filter)
}
func (s *volunteerRepoStub) IncrementCompleted(ctx context.Context, userID uint) error {
	return s.incrementCompletedFn(ctx, userID)
}

type userRepoStub struct {
	createFn            func(context.Context, *models.User) error
	getByIDFn           func(context.Context, uint) (*models.User, error)
	getByEmailFn        func(context.Context, string) (*models.User, error)
	updateFn            func(context.Context, *models.User) error
	updatePreferencesFn func(context.Context, uint, models.UserPreferences) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdatePreferences(ctx context.Context, userID uint, prefs models.UserPreferences) error {
	return s.updatePreferencesFn(ctx, userID, prefs)
}

func noopRequestRepo() *requestRepoStub {
	return &requestRepoStub{
		createFn: func(_ context.Context, r *models.HelpRequest) error {
			r.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.HelpRequest, error) {
			return &models.HelpRequest{ID: id, Status: models.RequestStatusPending}, nil
		},
		listFn: func(context.Context, repository.RequestFilter) ([]models.HelpRequest, error) {
			return nil, nil
		},
		countByStatusFn: func(context.Context, repository.RequestFilter) (map[models.RequestStatus]int64, error) {
			return map[models.RequestStatus]int64{}, nil
		},
		transitionStatusFn: func(context.Context, uint, models.RequestStatus, models.RequestStatus, map[string]interface{}) error {
			return nil
		},
	}
}

func noopVolunteerRepo() *volunteerRepoStub {
	return &volunteerRepoStub{
		createFn: func(context.Context, *models.VolunteerProfile) error { return nil },
		getByUserIDFn: func(_ context.Context, userID uint) (*models.VolunteerProfile, error) {
			return &models.VolunteerProfile{UserID: userID}, nil
		},
		updateFn:             func(context.Context, *models.VolunteerProfile) error { return nil },
		listFn:               func(context.Context, repository.VolunteerFilter) ([]models.VolunteerProfile, error) { return nil, nil },
		incrementCompletedFn: func(context.Context, uint) error { return nil },
	}
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(context.Context, *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleElderly}, nil
		},
		getByEmailFn:        func(context.Context, string) (*models.User, error) { return nil, nil },
		updateFn:            func(context.Context, *models.User) error { return nil },
		updatePreferencesFn: func(context.Context, uint, models.UserPreferences) error { return nil },
	}
}
