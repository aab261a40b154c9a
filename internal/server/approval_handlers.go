package server

import (
	"campusconnect/internal/models"
	"campusconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RequestApproval handles POST /api/approvals/request
func (s *Server) RequestApproval(c *fiber.Ctx) error {
	var in service.RequestApprovalInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if userID, ok := currentUserID(c); ok {
		in.SubmittedBy = &userID
	}

	approval, err := s.approvalService.RequestApproval(c.Context(), in)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":     true,
		"approval_id": approval.ID,
		"status":      approval.Status,
	})
}

// DecideApproval handles POST /api/approvals/decide. Unauthenticated by
// design: reviewers arrive from an email link. Throttled by the decision
// rate limiter in front of it.
func (s *Server) DecideApproval(c *fiber.Ctx) error {
	var in service.DecideInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request"))
	}

	message, err := s.approvalService.Decide(c.Context(), in)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// GetApprovals handles GET /api/admin/approvals
func (s *Server) GetApprovals(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	status := models.ApprovalStatus(c.Query("status"))

	approvals, err := s.approvalService.ListApprovals(c.Context(), status, p.Limit, p.Offset)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{"approvals": approvals})
}

// TriggerReconcile handles POST /api/admin/approvals/reconcile
func (s *Server) TriggerReconcile(c *fiber.Ctx) error {
	repaired, err := s.approvalService.Reconcile(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"repaired": repaired,
	})
}
