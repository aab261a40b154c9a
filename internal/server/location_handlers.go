package server

import (
	"campusconnect/internal/models"
	"campusconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type locationRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Category    string  `json:"category" validate:"max=100"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description" validate:"max=2000"`
	FloorInfo   string  `json:"floor_info" validate:"max=200"`
}

func (s *Server) parseLocationRequest(c *fiber.Ctx) (*locationRequest, error) {
	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, models.NewValidationError("Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return nil, models.NewValidationError("Invalid request")
	}
	if err := validation.ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return &req, nil
}

// GetLocations handles GET /api/locations
func (s *Server) GetLocations(c *fiber.Ctx) error {
	locations, err := s.locationRepo.ListAll(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"locations": locations})
}

// GetLocation handles GET /api/locations/:id
func (s *Server) GetLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	loc, err := s.locationRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(loc)
}

// CreateLocation handles POST /api/admin/locations
func (s *Server) CreateLocation(c *fiber.Ctx) error {
	req, err := s.parseLocationRequest(c)
	if err != nil {
		return respondAppError(c, err)
	}

	loc := &models.CampusLocation{
		Name:        req.Name,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		FloorInfo:   req.FloorInfo,
	}
	if err := s.locationRepo.Create(c.Context(), loc); err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(loc)
}

// UpdateLocation handles PUT /api/admin/locations/:id
func (s *Server) UpdateLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	req, err := s.parseLocationRequest(c)
	if err != nil {
		return respondAppError(c, err)
	}

	loc, err := s.locationRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}

	loc.Name = req.Name
	loc.Category = req.Category
	loc.Latitude = req.Latitude
	loc.Longitude = req.Longitude
	loc.Description = req.Description
	loc.FloorInfo = req.FloorInfo

	if err := s.locationRepo.Update(c.Context(), loc); err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(loc)
}

// DeleteLocation handles DELETE /api/admin/locations/:id
func (s *Server) DeleteLocation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.locationRepo.GetByID(c.Context(), id); err != nil {
		return respondAppError(c, err)
	}
	if err := s.locationRepo.Delete(c.Context(), id); err != nil {
		return respondAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
