package seed

import (
	"fmt"
	"log"

	"sahayogi/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo and load-test data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded rows. Requests go first so foreign keys hold.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.HelpRequest{},
		&models.VolunteerProfile{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// SeedCommunity creates a randomized community: elderly users with open
// requests and a pool of volunteers. Returns the created users.
func (s *Seeder) SeedCommunity(numElderly, numVolunteers, requestsPerElderly int) ([]models.User, error) {
	var users []models.User

	for i := 0; i < numElderly; i++ {
		elderly, err := s.factory.CreateElderly()
		if err != nil {
			return nil, err
		}
		users = append(users, *elderly)
		for j := 0; j < requestsPerElderly; j++ {
			if _, err := s.factory.CreateRequest(elderly, 30); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i < numVolunteers; i++ {
		volunteer, _, err := s.factory.CreateVolunteer()
		if err != nil {
			return nil, err
		}
		users = append(users, *volunteer)
	}

	log.Printf("Seeded %d elderly and %d volunteer accounts", numElderly, numVolunteers)
	return users, nil
}

// SeedDemo creates the small fixed dataset used for local development: three
// elderly users, four volunteers, and five open requests.
func (s *Seeder) SeedDemo() error {
	elderly := []struct {
		name, email, address string
	}{
		{"John Doe", "elderly@example.com", "123 Main St, Anytown, USA"},
		{"Mary Johnson", "mary@example.com", "456 Oak Ave, Somewhere, USA"},
		{"Robert Williams", "robert@example.com", "789 Pine Rd, Elsewhere, USA"},
	}
	owners := make([]*models.User, 0, len(elderly))
	for _, e := range elderly {
		e := e
		user, err := s.factory.CreateElderly(func(u *models.User) {
			u.Name = e.name
			u.Email = e.email
			u.Address = e.address
		})
		if err != nil {
			return err
		}
		owners = append(owners, user)
	}

	volunteers := []struct {
		name, email, bio string
		skills           []string
		availability     models.Availability
		rating           float64
	}{
		{"Jane Smith", "volunteer@example.com",
			"I love helping seniors with technology and daily tasks.",
			[]string{"technology", "shopping", "transportation"},
			models.Availability{Weekdays: true, Weekends: true, Mornings: true, Afternoons: true}, 4.8},
		{"Michael Brown", "michael@example.com",
			"Retired nurse with 30 years of experience. Happy to help with medical appointments and care.",
			[]string{"medical", "companionship", "housework"},
			models.Availability{Weekdays: true, Mornings: true, Afternoons: true}, 4.9},
		{"Sarah Davis", "sarah@example.com",
			"College student studying social work. Available weekends and evenings.",
			[]string{"companionship", "technology", "shopping"},
			models.Availability{Weekends: true, Afternoons: true, Evenings: true}, 4.7},
		{"David Wilson", "david@example.com",
			"Retired engineer who enjoys helping others. Good with technology and home repairs.",
			[]string{"technology", "housework", "transportation"},
			models.Availability{Weekdays: true, Weekends: true, Mornings: true, Afternoons: true}, 4.6},
	}
	for _, v := range volunteers {
		v := v
		if _, _, err := s.factory.CreateVolunteer(func(u *models.User, p *models.VolunteerProfile) {
			u.Name = v.name
			u.Email = v.email
			u.Bio = v.bio
			p.Skills = v.skills
			p.Availability = v.availability
			p.Rating = v.rating
		}); err != nil {
			return err
		}
	}

	requests := []struct {
		owner       *models.User
		title, desc string
		category    models.RequestCategory
		urgency     models.RequestUrgency
	}{
		{owners[0], "Grocery Shopping Assistance", "Need help with weekly grocery shopping.", models.CategoryShopping, models.UrgencyMedium},
		{owners[0], "Doctor Appointment", "Need transportation to my cardiologist.", models.CategoryMedical, models.UrgencyHigh},
		{owners[0], "Help Setting Up New Phone", "Got a new smartphone and need help setting it up.", models.CategoryTechnology, models.UrgencyLow},
		{owners[1], "Weekly House Cleaning", "Need help with vacuuming and dusting.", models.CategoryHousework, models.UrgencyMedium},
		{owners[2], "Companionship Visit", "Would enjoy some company over tea.", models.CategoryCompanionship, models.UrgencyLow},
	}
	for _, r := range requests {
		r := r
		if _, err := s.factory.CreateRequest(r.owner, 7, func(req *models.HelpRequest) {
			req.Title = r.title
			req.Description = r.desc
			req.Category = r.category
			req.Urgency = r.urgency
		}); err != nil {
			return err
		}
	}

	log.Println("Seeded demo dataset")
	return nil
}
