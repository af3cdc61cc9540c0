package server

import (
	"sahayogi/internal/models"
	"sahayogi/internal/repository"
	"sahayogi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetVolunteers handles GET /api/volunteers
func (s *Server) GetVolunteers(c *fiber.Ctx) error {
	filter := repository.VolunteerFilter{
		Search:       c.Query("search"),
		Skill:        c.Query("skill"),
		Availability: c.Query("availability"),
	}

	profiles, err := s.volunteerService.Discover(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"volunteers": profiles,
		"count":      len(profiles),
	})
}

// GetVolunteer handles GET /api/volunteers/:id, where :id is the user ID
// backing the profile.
func (s *Server) GetVolunteer(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	profile, err := s.volunteerService.GetProfile(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyVolunteerProfile handles PUT /api/volunteers/me
func (s *Server) UpdateMyVolunteerProfile(c *fiber.Ctx) error {
	var update service.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.volunteerService.UpdateProfile(c.Context(), currentUserID(c), update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}
