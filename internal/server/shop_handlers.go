package server

import (
	"campusconnect/internal/models"
	"campusconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetShops handles GET /api/shops, mirroring the club listing rules.
func (s *Server) GetShops(c *fiber.Ctx) error {
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

	shops, err := s.shopRepo.List(c.Context(), status, category, p.Limit, p.Offset)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"shops": shops})
}

// GetShop handles GET /api/shops/:id
func (s *Server) GetShop(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	shop, err := s.shopRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(shop)
}

// CreateShop handles POST /api/shops
func (s *Server) CreateShop(c *fiber.Ctx) error {
	var req struct {
		Name         string `json:"name" validate:"required,max=200"`
		Description  string `json:"description" validate:"max=2000"`
		Category     string `json:"category" validate:"max=100"`
		Location     string `json:"location" validate:"max=200"`
		ContactInfo  string `json:"contact_info" validate:"max=500"`
		OpeningHours string `json:"opening_hours" validate:"max=200"`
		ImageURL     string `json:"image_url" validate:"max=500"`
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
	shop := &models.Shop{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		ContactInfo:  req.ContactInfo,
		OpeningHours: req.OpeningHours,
		ImageURL:     req.ImageURL,
		Status:       models.ApprovalStatusPending,
		SubmittedBy:  &userID,
	}
	if err := s.shopRepo.Create(c.Context(), shop); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(shop)
}
