package server

import (
	"campusconnect/internal/models"
	"campusconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetClubs handles GET /api/clubs. The public listing shows approved clubs
// only; admins can pass ?all=true to include pending and rejected entries.
func (s *Server) GetClubs(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	category := c.Query("category")

	status := models.ApprovalStatusApproved
	if c.QueryBool("all", false) {
		if userID, ok := s.optionalUserID(c); ok {
			if admin, err := s.isAdminByUserID(c.Context(), userID); err == nil && admin {
				status = ""
			}
		}
	}

	clubs, err := s.clubRepo.List(c.Context(), status, category, p.Limit, p.Offset)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"clubs": clubs})
}

// GetClub handles GET /api/clubs/:id
func (s *Server) GetClub(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	club, err := s.clubRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(club)
}

// CreateClub handles POST /api/clubs. New clubs always start pending; they
// only become visible after a faculty reviewer approves them.
func (s *Server) CreateClub(c *fiber.Ctx) error {
	var req struct {
		Name               string `json:"name" validate:"required,max=200"`
		Description        string `json:"description" validate:"max=2000"`
		Category           string `json:"category" validate:"max=100"`
		FacultyCoordinator string `json:"faculty_coordinator" validate:"max=200"`
		FacultyEmail       string `json:"faculty_email" validate:"omitempty,email,max=255"`
		MeetingSchedule    string `json:"meeting_schedule" validate:"max=200"`
		ContactInfo        string `json:"contact_info" validate:"max=500"`
		ImageURL           string `json:"image_url" validate:"max=500"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request"))
	}

	userID, _ := currentUserID(c)
	club := &models.Club{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		FacultyCoordinator: req.FacultyCoordinator,
		FacultyEmail:       req.FacultyEmail,
		MeetingSchedule:    req.MeetingSchedule,
		ContactInfo:        req.ContactInfo,
		ImageURL:           req.ImageURL,
		Status:             models.ApprovalStatusPending,
		SubmittedBy:        &userID,
	}
	if err := s.clubRepo.Create(c.Context(), club); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(club)
}
