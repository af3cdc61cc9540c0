// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"sahayogi/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password every seeded account gets.
const DemoPassword = "StrongPass#2023"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
	seq  int
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// nextEmail returns a unique address; the users table has a unique email index.
func (f *Factory) nextEmail() string {
	f.seq++
	return fmt.Sprintf("%s%d@%s", gofakeit.Username(), f.seq, gofakeit.DomainName())
}

func hashedDemoPassword() string {
	// MinCost keeps bulk seeding fast; these are throwaway credentials.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// CreateElderly persists an elderly user with a plausible profile.
func (f *Factory) CreateElderly(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    f.nextEmail(),
		Password: hashedDemoPassword(),
		Role:     models.RoleElderly,
		Phone:    gofakeit.Phone(),
		Address:  gofakeit.Street() + ", " + gofakeit.City(),
		Bio:      gofakeit.Sentence(12),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create elderly user: %w", err)
	}
	return user, nil
}

// CreateVolunteer persists a volunteer user together with their discovery
// profile.
func (f *Factory) CreateVolunteer(overrides ...func(*models.User, *models.VolunteerProfile)) (*models.User, *models.VolunteerProfile, error) {
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    f.nextEmail(),
		Password: hashedDemoPassword(),
		Role:     models.RoleVolunteer,
		Phone:    gofakeit.Phone(),
		Bio:      gofakeit.Sentence(12),
	}

	skillCount := 1 + f.rand.Intn(3)
	skills := make([]string, 0, skillCount)
	for _, i := range f.rand.Perm(len(models.Categories))[:skillCount] {
		skills = append(skills, string(models.Categories[i]))
	}

	profile := &models.VolunteerProfile{
		Skills: skills,
		Availability: models.Availability{
			Weekdays:   gofakeit.Bool(),
			Weekends:   gofakeit.Bool(),
			Mornings:   gofakeit.Bool(),
			Afternoons: gofakeit.Bool(),
			Evenings:   gofakeit.Bool(),
		},
		Rating: 3.5 + f.rand.Float64()*1.5,
	}

	for _, override := range overrides {
		override(user, profile)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, nil, fmt.Errorf("create volunteer user: %w", err)
	}
	profile.UserID = user.ID
	if err := f.db.Create(profile).Error; err != nil {
		return nil, nil, fmt.Errorf("create volunteer profile: %w", err)
	}
	return user, profile, nil
}

// CreateRequest persists a pending help request owned by the elderly user,
// with a creation time spread over the last maxDays days.
func (f *Factory) CreateRequest(elderly *models.User, maxDays int, overrides ...func(*models.HelpRequest)) (*models.HelpRequest, error) {
	if maxDays <= 0 {
		maxDays = 30
	}
	urgencies := []models.RequestUrgency{models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh}

	request := &models.HelpRequest{
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		Category:    models.Categories[f.rand.Intn(len(models.Categories))],
		Urgency:     urgencies[f.rand.Intn(len(urgencies))],
		Status:      models.RequestStatusPending,
		ElderlyID:   elderly.ID,
		Address:     elderly.Address,
		CreatedAt: time.Now().
			Add(-time.Duration(f.rand.Intn(maxDays)) * 24 * time.Hour).
			Add(-time.Duration(f.rand.Intn(24)) * time.Hour),
	}
	for _, override := range overrides {
		override(request)
	}
	if err := f.db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("create help request: %w", err)
	}
	return request, nil
}
