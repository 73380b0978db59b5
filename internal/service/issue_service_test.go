package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"support-kb/internal/dto"
	"support-kb/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIssueService(store *memoryIssueStore, lookup skuLookup) *IssueService {
	svc := NewIssueService(store, lookup, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestIssueService_LogIssue(t *testing.T) {
	productID := uuid.New()
	store := &memoryIssueStore{}
	svc := newIssueService(store, skuLookup{"93548": productID})

	issue, err := svc.LogIssue(context.Background(), &dto.LogIssueRequest{
		SKU:        " 93548 ",
		Issue:      "Amp keeps shutting off",
		CallerInfo: "Dealer, 555-0100",
	})
	require.NoError(t, err)
	require.Len(t, store.created, 1)

	assert.Equal(t, "93548", issue.SKU)
	require.NotNil(t, issue.ProductID)
	assert.Equal(t, productID, *issue.ProductID)
	assert.Equal(t, models.SeverityMedium, issue.Severity)
	assert.Equal(t, models.IssueSourceVapiCall, issue.Source)
	assert.Equal(t, models.IssueStatusNew, issue.Status)
	assert.Equal(t, 2026, issue.CreatedAt.Year())
	assert.NotEqual(t, uuid.Nil, issue.ID)
}

func TestIssueService_UnknownOrFailedProductLookup(t *testing.T) {
	store := &memoryIssueStore{}
	svc := newIssueService(store, skuLookup{})

	issue, err := svc.LogIssue(context.Background(), &dto.LogIssueRequest{SKU: "00000", Issue: "Hum", Severity: "HIGH"})
	require.NoError(t, err)
	assert.Nil(t, issue.ProductID)
	assert.Equal(t, models.SeverityHigh, issue.Severity)

	issue, err = svc.LogIssue(context.Background(), &dto.LogIssueRequest{SKU: "broken", Issue: "Hum"})
	require.NoError(t, err)
	assert.Nil(t, issue.ProductID)
}

func TestIssueService_RequiresIssue(t *testing.T) {
	store := &memoryIssueStore{}
	svc := newIssueService(store, skuLookup{})

	_, err := svc.LogIssue(context.Background(), &dto.LogIssueRequest{SKU: "93548", Issue: "  "})
	assert.ErrorIs(t, err, ErrIssueRequired)
	assert.Empty(t, store.created)
}

func TestIssueService_StoreFailure(t *testing.T) {
	storeErr := errors.New("insert failed")
	svc := newIssueService(&memoryIssueStore{err: storeErr}, skuLookup{})

	_, err := svc.LogIssue(context.Background(), &dto.LogIssueRequest{Issue: "Hum"})
	assert.ErrorIs(t, err, storeErr)
}

func TestIssueService_SanitizesText(t *testing.T) {
	store := &memoryIssueStore{}
	svc := newIssueService(store, skuLookup{})

	issue, err := svc.LogIssue(context.Background(), &dto.LogIssueRequest{Issue: "No sound\xff at all"})
	require.NoError(t, err)
	assert.Equal(t, "No sound at all", issue.Issue)
}

func TestIssueLoggedMessage(t *testing.T) {
	id := uuid.MustParse("6f1c2d1e-0000-4000-8000-000000000001")
	msg := IssueLoggedMessage(&models.SupportIssue{ID: id})
	assert.Equal(t, "Support issue logged successfully. Issue ID: 6f1c2d1e-0000-4000-8000-000000000001. A technician will follow up.", msg)
}
