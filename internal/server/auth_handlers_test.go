package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sahayogi/internal/config"
	"sahayogi/internal/models"
	"sahayogi/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePreferences(ctx context.Context, userID uint, prefs models.UserPreferences) error {
	args := m.Called(ctx, userID, prefs)
	return args.Error(0)
}

// MockVolunteerRepository is a mock of the VolunteerRepository interface
type MockVolunteerRepository struct {
	mock.Mock
}

func (m *MockVolunteerRepository) Create(ctx context.Context, profile *models.VolunteerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockVolunteerRepository) GetByUserID(ctx context.Context, userID uint) (*models.VolunteerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerRepository) Update(ctx context.Context, profile *models.VolunteerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockVolunteerRepository) List(ctx context.Context, filter repository.VolunteerFilter) ([]models.VolunteerProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerRepository) IncrementCompleted(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestSignup(t *testing.T) {
	app := fiber.New()
	mockUsers := new(MockUserRepository)
	mockVolunteers := new(MockVolunteerRepository)

	s := &Server{
		config:        &config.Config{JWTSecret: "test_secret"},
		userRepo:      mockUsers,
		volunteerRepo: mockVolunteers,
	}

	app.Post("/signup", s.Signup)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Elderly Success",
			body: map[string]string{
				"name":     "John Doe",
				"email":    "john@example.com",
				"password": "StrongPass#2023",
				"role":     "elderly",
			},
			mockSetup: func() {
				mockUsers.On("GetByEmail", mock.Anything, "john@example.com").Return(nil, nil)
				mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Volunteer Creates Profile",
			body: map[string]string{
				"name":     "Jane Smith",
				"email":    "jane@example.com",
				"password": "StrongPass#2023",
				"role":     "volunteer",
			},
			mockSetup: func() {
				mockUsers.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
				mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
				mockVolunteers.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate User",
			body: map[string]string{
				"name":     "John Doe",
				"email":    "exists@example.com",
				"password": "StrongPass#2023",
				"role":     "elderly",
			},
			mockSetup: func() {
				mockUsers.On("GetByEmail", mock.Anything, "exists@example.com").Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Unknown Role",
			body: map[string]string{
				"name":     "John Doe",
				"email":    "john2@example.com",
				"password": "StrongPass#2023",
				"role":     "admin",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Weak Password",
			body: map[string]string{
				"name":     "John Doe",
				"email":    "john3@example.com",
				"password": "short",
				"role":     "elderly",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
	mockVolunteers.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	app := fiber.New()
	mockUsers := new(MockUserRepository)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockUsers,
	}

	app.Post("/login", s.Login)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("StrongPass#2023"), bcrypt.DefaultCost)
	stored := &models.User{ID: 1, Email: "john@example.com", Password: string(hashed), Role: models.RoleElderly}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"email": "john@example.com", "password": "StrongPass#2023"},
			mockSetup: func() {
				mockUsers.On("GetByEmail", mock.Anything, "john@example.com").Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong Password",
			body: map[string]string{"email": "john@example.com", "password": "WrongPass#2023"},
			mockSetup: func() {
				mockUsers.On("GetByEmail", mock.Anything, "john@example.com").Return(stored, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unknown Email",
			body: map[string]string{"email": "nobody@example.com", "password": "StrongPass#2023"},
			mockSetup: func() {
				mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var parsed struct {
					Token string      `json:"token"`
					User  models.User `json:"user"`
				}
				assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
				assert.NotEmpty(t, parsed.Token)
				assert.Equal(t, uint(1), parsed.User.ID)
			}
		})
	}
}
