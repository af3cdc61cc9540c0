package server

import (
	"sahayogi/internal/models"
	"sahayogi/internal/repository"
	"sahayogi/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest handles POST /api/requests
func (s *Server) CreateRequest(c *fiber.Ctx) error {
	var in validation.RequestInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	request, err := s.requestService.Create(c.Context(), currentUserID(c), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetRequests handles GET /api/requests
//
// An elderly caller sees only their own requests. A volunteer sees the open
// pending pool by default, or their own assignments with ?mine=true. Category,
// urgency, status and free-text search narrow the listing further.
func (s *Server) GetRequests(c *fiber.Ctx) error {
	filter := repository.RequestFilter{
		Status:   models.RequestStatus(c.Query("status")),
		Category: c.Query("category"),
		Urgency:  c.Query("urgency"),
		Search:   c.Query("search"),
	}

	switch currentUserRole(c) {
	case models.RoleElderly:
		filter.ElderlyID = currentUserID(c)
	case models.RoleVolunteer:
		if c.QueryBool("mine") {
			filter.VolunteerID = currentUserID(c)
		} else if filter.Status == "" {
			filter.Status = models.RequestStatusPending
		}
	}

	requests, err := s.requestService.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"requests": requests,
		"count":    len(requests),
	})
}

// GetRequest handles GET /api/requests/:id
func (s *Server) GetRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	request, err := s.requestService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(request)
}

// GetRequestSummary handles GET /api/requests/summary
func (s *Server) GetRequestSummary(c *fiber.Ctx) error {
	counts, err := s.requestService.Summary(c.Context(), currentUserID(c), currentUserRole(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"counts": counts})
}

// AcceptRequest handles POST /api/requests/:id/accept
func (s *Server) AcceptRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	request, err := s.requestService.Accept(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(request)
}

// CancelRequest handles POST /api/requests/:id/cancel
func (s *Server) CancelRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	request, err := s.requestService.Cancel(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(request)
}

// CompleteRequest handles POST /api/requests/:id/complete
func (s *Server) CompleteRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	request, err := s.requestService.Complete(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(request)
}
