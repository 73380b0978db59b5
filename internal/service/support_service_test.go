package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSupportService(t *testing.T) *SupportService {
	t.Helper()
	store := NewKnowledgeStore(&staticSource{records: fixtureRecords()}, zap.NewNop())
	return NewSupportService(store, zap.NewNop())
}

func TestSupportService_ListProducts(t *testing.T) {
	svc := newSupportService(t)

	resp, err := svc.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "93548", resp.Products[0].SKU)
	assert.Equal(t, "UA 2-125", resp.Products[0].Model)
	assert.Equal(t, "amplifiers", resp.Products[0].Category)
}

func TestSupportService_FindProduct(t *testing.T) {
	svc := newSupportService(t)
	ctx := context.Background()

	rec, err := svc.FindProduct(ctx, "ua 2-125 amplifier")
	require.NoError(t, err)
	assert.Equal(t, "93548", rec.Identifier)

	rec, err = svc.FindProduct(ctx, "landscape")
	require.NoError(t, err)
	assert.Equal(t, "10001", rec.Identifier)

	_, err = svc.FindProduct(ctx, "nonexistent-model-xyz")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.FindProduct(ctx, "  ")
	assert.ErrorIs(t, err, ErrProductQueryRequired)
}

func TestSupportService_DisplayNameOnlyForProductLookup(t *testing.T) {
	svc := newSupportService(t)

	_, err := svc.ListFAQ(context.Background(), "landscape")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSupportService_SearchFAQ(t *testing.T) {
	svc := newSupportService(t)
	ctx := context.Background()

	resp, err := svc.SearchFAQ(ctx, "93548", "pair power")
	require.NoError(t, err)
	assert.True(t, resp.Matched)
	require.Len(t, resp.Answers, 2)
	assert.Equal(t, "Power issue", resp.Answers[0].Question)
	assert.Equal(t, 16, resp.Answers[0].Score)
	assert.Equal(t, 10, resp.Answers[1].Score)

	resp, err = svc.SearchFAQ(ctx, "93548", "warranty")
	require.NoError(t, err)
	assert.False(t, resp.Matched)
	require.Len(t, resp.Answers, 2, "falls back to every FAQ entry")
	assert.Zero(t, resp.Answers[0].Score)
	assert.Equal(t, "How do I pair the speaker", resp.Answers[0].Question)
}

func TestSupportService_ListFAQ(t *testing.T) {
	svc := newSupportService(t)

	resp, err := svc.ListFAQ(context.Background(), "UA 2")
	require.NoError(t, err)
	assert.Equal(t, "UA 2-125", resp.Product)
	assert.Len(t, resp.FAQ, 2)
}

func TestSupportService_Troubleshoot(t *testing.T) {
	svc := newSupportService(t)
	ctx := context.Background()

	resp, err := svc.Troubleshoot(ctx, "93548", "cable")
	require.NoError(t, err)
	assert.True(t, resp.Matched)
	assert.Empty(t, resp.Message)
	require.Len(t, resp.Troubleshooting, 1)
	assert.Equal(t, 5, resp.Troubleshooting[0].Score)
	assert.NotNil(t, resp.Support)

	resp, err = svc.Troubleshoot(ctx, "93548", "wifi dropouts")
	require.NoError(t, err)
	assert.False(t, resp.Matched)
	assert.Equal(t, NoTroubleshootingMatchMessage, resp.Message)
	assert.Len(t, resp.Troubleshooting, 2)
}

func TestSupportService_ListTroubleshooting(t *testing.T) {
	svc := newSupportService(t)

	resp, err := svc.ListTroubleshooting(context.Background(), "93548")
	require.NoError(t, err)
	assert.Len(t, resp.Troubleshooting, 2)
}

func TestSupportService_Installation(t *testing.T) {
	svc := newSupportService(t)
	ctx := context.Background()

	resp, err := svc.InstallationGuide(ctx, "93548", "rack")
	require.NoError(t, err)
	assert.True(t, resp.Matched)
	require.Len(t, resp.Guides, 1)
	assert.Equal(t, 25, resp.Guides[0].Score)
	assert.NotNil(t, resp.Documents)

	resp, err = svc.InstallationGuide(ctx, "93548", "z")
	require.NoError(t, err)
	assert.False(t, resp.Matched)
	assert.Len(t, resp.Guides, 2)

	list, err := svc.ListInstallation(ctx, "93548")
	require.NoError(t, err)
	assert.Len(t, list.InstallationTopics, 2)
	assert.NotNil(t, list.Documents)
}

func TestSupportService_LoadFailure(t *testing.T) {
	store := NewKnowledgeStore(&staticSource{err: errors.New("boom")}, zap.NewNop())
	svc := NewSupportService(store, zap.NewNop())

	_, err := svc.SearchFAQ(context.Background(), "93548", "pair")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)

	_, err = svc.ProductCount(context.Background())
	assert.Error(t, err)
}
