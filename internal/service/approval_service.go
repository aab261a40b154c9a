// Package service implements the business logic layer of the portal.
package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"campusconnect/internal/mailer"
	"campusconnect/internal/middleware"
	"campusconnect/internal/models"
	"campusconnect/internal/observability"
	"campusconnect/internal/repository"
	"campusconnect/internal/validation"

	"github.com/google/uuid"
)

const (
	maxNameLen        = 200
	maxEmailLen       = 255
	maxDescriptionLen = 2000
)

// ApprovalService coordinates the faculty approval workflow: issuing review
// requests and processing the reviewer's decision.
type ApprovalService struct {
	approvalRepo repository.ApprovalRepository
	mail         mailer.Sender
	baseURL      string
}

// NewApprovalService returns a new ApprovalService.
func NewApprovalService(approvalRepo repository.ApprovalRepository, mail mailer.Sender, baseURL string) *ApprovalService {
	return &ApprovalService{
		approvalRepo: approvalRepo,
		mail:         mail,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

// RequestApprovalInput carries a review request for a submitted club or shop.
type RequestApprovalInput struct {
	ItemType       string `json:"item_type"`
	ItemID         uint   `json:"item_id"`
	ItemName       string `json:"item_name"`
	SubmitterName  string `json:"submitter_name"`
	SubmitterEmail string `json:"submitter_email"`
	FacultyEmail   string `json:"faculty_email"`
	Description    string `json:"description"`
	SubmittedBy    *uint  `json:"-"`
}

// validate rejects malformed input without revealing which field failed.
func (in *RequestApprovalInput) validate() error {
	invalid := models.NewValidationError("Invalid request")

	if validation.ValidateItemType(in.ItemType) != nil {
		return invalid
	}
	if in.ItemID == 0 {
		return invalid
	}
	if in.ItemName == "" || len(in.ItemName) > maxNameLen {
		return invalid
	}
	if in.SubmitterName == "" || len(in.SubmitterName) > maxNameLen {
		return invalid
	}
	if len(in.SubmitterEmail) > maxEmailLen || validation.ValidateEmail(in.SubmitterEmail) != nil {
		return invalid
	}
	if len(in.FacultyEmail) > maxEmailLen || validation.ValidateEmail(in.FacultyEmail) != nil {
		return invalid
	}
	if len(in.Description) > maxDescriptionLen {
		return invalid
	}
	return nil
}

// RequestApproval validates the submission, persists a pending approval
// record stamped onto the target entity, then emails the faculty reviewer
// with approve and reject links. Nothing is written when validation fails.
// A mail failure after the commit is surfaced as an upstream error; the
// persisted row lets operators re-trigger delivery.
func (s *ApprovalService) RequestApproval(ctx context.Context, in RequestApprovalInput) (*models.PendingApproval, error) {
	ctx, span := observability.StartServiceSpan(ctx, "ApprovalService", "RequestApproval")
	defer span.End()

	if err := in.validate(); err != nil {
		return nil, err
	}

	approval := &models.PendingApproval{
		ItemType:      models.ItemType(in.ItemType),
		ItemID:        in.ItemID,
		SubmittedBy:   in.SubmittedBy,
		FacultyEmail:  in.FacultyEmail,
		ApprovalToken: uuid.NewString(),
		Status:        models.ApprovalStatusPending,
	}
	if err := s.approvalRepo.CreateWithEntityStamp(ctx, approval); err != nil {
		return nil, err
	}

	subject, body := s.composeReviewEmail(in, approval.ApprovalToken)
	if err := s.mail.Send(in.FacultyEmail, subject, body); err != nil {
		middleware.ApprovalEmails.WithLabelValues("error").Inc()
		slog.ErrorContext(ctx, "approval email dispatch failed",
			"item_type", in.ItemType,
			"item_id", in.ItemID,
			"error", err)
		return nil, models.NewUpstreamError(err)
	}
	middleware.ApprovalEmails.WithLabelValues("sent").Inc()

	slog.InfoContext(ctx, "approval requested",
		"item_type", in.ItemType,
		"item_id", in.ItemID)
	return approval, nil
}

// composeReviewEmail builds the reviewer notification. Every user-supplied
// field is HTML-escaped before it reaches the body.
func (s *ApprovalService) composeReviewEmail(in RequestApprovalInput, token string) (subject, body string) {
	itemName := html.EscapeString(in.ItemName)
	submitterName := html.EscapeString(in.SubmitterName)
	submitterEmail := html.EscapeString(in.SubmitterEmail)
	description := html.EscapeString(in.Description)
	itemLabel := itemTypeLabel(models.ItemType(in.ItemType))

	approveURL := fmt.Sprintf("%s/approve?token=%s&action=approve", s.baseURL, token)
	rejectURL := fmt.Sprintf("%s/approve?token=%s&action=reject", s.baseURL, token)

	subject = fmt.Sprintf("%s approval requested: %s", itemLabel, in.ItemName)
	body = fmt.Sprintf(`<html>
<body>
<h2>%s approval request</h2>
<p>A new %s has been submitted to the campus portal and needs your review.</p>
<table>
<tr><td><b>Name</b></td><td>%s</td></tr>
<tr><td><b>Submitted by</b></td><td>%s (%s)</td></tr>
<tr><td><b>Description</b></td><td>%s</td></tr>
</table>
<p>
<a href="%s">Approve</a> &nbsp; <a href="%s">Reject</a>
</p>
<p>These links stay valid for 30 days.</p>
</body>
</html>`, itemLabel, strings.ToLower(itemLabel), itemName, submitterName, submitterEmail, description, approveURL, rejectURL)
	return subject, body
}

// DecideInput carries an emailed-link decision.
type DecideInput struct {
	Token  string `json:"token"`
	Action string `json:"action"`
}

// Decide processes an approve or reject link click. Malformed tokens and
// actions fail with the same generic validation error; unknown, decided and
// expired tokens fail with one indistinguishable message.
func (s *ApprovalService) Decide(ctx context.Context, in DecideInput) (string, error) {
	ctx, span := observability.StartServiceSpan(ctx, "ApprovalService", "Decide")
	defer span.End()

	if validation.ValidateToken(in.Token) != nil || validation.ValidateAction(in.Action) != nil {
		return "", models.NewValidationError("Invalid request")
	}

	approval, err := s.approvalRepo.FindDecidable(ctx, in.Token)
	if err != nil {
		return "", err
	}

	status := models.ApprovalStatusApproved
	if in.Action == "reject" {
		status = models.ApprovalStatusRejected
	}

	if err := s.approvalRepo.Decide(ctx, approval, status); err != nil {
		return "", err
	}
	middleware.ApprovalDecisions.WithLabelValues(string(approval.ItemType), in.Action).Inc()

	slog.InfoContext(ctx, "approval decided",
		"item_type", approval.ItemType,
		"item_id", approval.ItemID,
		"action", in.Action)
	return fmt.Sprintf("%s has been %s", itemTypeLabel(approval.ItemType), status), nil
}

// ListApprovals returns approval records for the admin audit view.
func (s *ApprovalService) ListApprovals(ctx context.Context, status models.ApprovalStatus, limit, offset int) ([]models.PendingApproval, error) {
	return s.approvalRepo.List(ctx, status, limit, offset)
}

// Reconcile repairs entities whose status drifted from their decided
// approval record. Returns the number of repaired entities.
func (s *ApprovalService) Reconcile(ctx context.Context) (int, error) {
	ctx, span := observability.StartServiceSpan(ctx, "ApprovalService", "Reconcile")
	defer span.End()

	drifted, err := s.approvalRepo.FindDisagreements(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for i := range drifted {
		if err := s.approvalRepo.RepairEntity(ctx, &drifted[i]); err != nil {
			slog.ErrorContext(ctx, "reconcile repair failed",
				"approval_id", drifted[i].ID,
				"error", err)
			continue
		}
		repaired++
	}

	if repaired > 0 {
		slog.InfoContext(ctx, "reconcile repaired drifted entities", "count", repaired)
	}
	return repaired, nil
}

func itemTypeLabel(t models.ItemType) string {
	switch t {
	case models.ItemTypeClub:
		return "Club"
	case models.ItemTypeShop:
		return "Shop"
	default:
		return "Item"
	}
}
