package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"support-kb/internal/dto"
	"support-kb/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrIssueRequired = errors.New("issue description required")

// IssueStore persists support issues.
type IssueStore interface {
	Create(ctx context.Context, issue *models.SupportIssue) error
}

// ProductIDLookup finds the stored id of a product by SKU. It returns nil when
// the SKU is unknown.
type ProductIDLookup interface {
	GetIDBySKU(ctx context.Context, sku string) (*uuid.UUID, error)
}

type IssueService struct {
	issues   IssueStore
	products ProductIDLookup
	logger   *zap.Logger
	now      func() time.Time
}

func NewIssueService(issues IssueStore, products ProductIDLookup, logger *zap.Logger) *IssueService {
	return &IssueService{
		issues:   issues,
		products: products,
		logger:   logger,
		now:      time.Now,
	}
}

// LogIssue records a new support issue reported by a caller.
func (s *IssueService) LogIssue(ctx context.Context, req *dto.LogIssueRequest) (*models.SupportIssue, error) {
	if isBlank(req.Issue) {
		return nil, ErrIssueRequired
	}

	severity := models.IssueSeverity(strings.ToLower(strings.TrimSpace(req.Severity)))
	if severity == "" {
		severity = models.SeverityMedium
	}

	sku := strings.TrimSpace(req.SKU)
	var productID *uuid.UUID
	if sku != "" {
		id, err := s.products.GetIDBySKU(ctx, sku)
		if err != nil {
			s.logger.Warn("Product lookup for issue failed", zap.String("sku", sku), zap.Error(err))
		} else {
			productID = id
		}
	}

	issue := &models.SupportIssue{
		ID:         uuid.New(),
		ProductID:  productID,
		SKU:        sku,
		Issue:      sanitizeUTF8(req.Issue),
		CallerInfo: sanitizeUTF8(req.CallerInfo),
		Severity:   severity,
		Notes:      sanitizeUTF8(req.Notes),
		Source:     models.IssueSourceVapiCall,
		Status:     models.IssueStatusNew,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to save issue: %w", err)
	}

	s.logger.Info("Support issue logged",
		zap.String("issue_id", issue.ID.String()),
		zap.String("sku", issue.SKU),
		zap.String("severity", string(issue.Severity)),
	)

	return issue, nil
}

// IssueLoggedMessage is the confirmation read back to the caller.
func IssueLoggedMessage(issue *models.SupportIssue) string {
	return fmt.Sprintf("Support issue logged successfully. Issue ID: %s. A technician will follow up.", issue.ID)
}
