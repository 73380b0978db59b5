package service

import (
	"context"
	"errors"

	"support-kb/internal/dto"
	"support-kb/internal/engine"
	"support-kb/internal/models"

	"go.uber.org/zap"
)

var (
	ErrProductQueryRequired = errors.New("missing sku or model parameter")
	ErrProductNotFound      = errors.New("product not found")
)

// NoTroubleshootingMatchMessage accompanies the full troubleshooting list when
// an issue description matched nothing.
const NoTroubleshootingMatchMessage = "No specific troubleshooting found. Here are general tips:"

// SupportService answers product, FAQ, troubleshooting and installation
// lookups against the current knowledge snapshot.
type SupportService struct {
	store  *KnowledgeStore
	logger *zap.Logger
}

func NewSupportService(store *KnowledgeStore, logger *zap.Logger) *SupportService {
	return &SupportService{
		store:  store,
		logger: logger,
	}
}

// ProductCount reports how many products the snapshot holds.
func (s *SupportService) ProductCount(ctx context.Context) (int, error) {
	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return 0, err
	}
	return catalog.Len(), nil
}

func (s *SupportService) ListProducts(ctx context.Context) (*dto.ProductListResponse, error) {
	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]dto.ProductSummary, 0, catalog.Len())
	for _, rec := range catalog.Records() {
		products = append(products, dto.ProductSummary{
			SKU:      rec.Identifier,
			Model:    rec.Product.Model,
			Name:     rec.Product.FullName,
			Category: rec.Product.Category,
		})
	}

	return &dto.ProductListResponse{Products: products, Count: len(products)}, nil
}

// FindProduct resolves term by SKU, model name or display name.
func (s *SupportService) FindProduct(ctx context.Context, term string) (*models.KnowledgeRecord, error) {
	return s.resolve(ctx, term, engine.Resolver{MatchDisplayName: true})
}

func (s *SupportService) ListFAQ(ctx context.Context, productQuery string) (*dto.FAQListResponse, error) {
	rec, err := s.resolve(ctx, productQuery, engine.Resolver{})
	if err != nil {
		return nil, err
	}
	return &dto.FAQListResponse{
		Product: rec.Product.Model,
		FAQ:     faqItems(rec.FAQ),
	}, nil
}

// SearchFAQ ranks the product's FAQ against question. When nothing matches,
// the full FAQ list is returned with Matched false.
func (s *SupportService) SearchFAQ(ctx context.Context, productQuery, question string) (*dto.FAQSearchResponse, error) {
	rec, err := s.resolve(ctx, productQuery, engine.Resolver{})
	if err != nil {
		return nil, err
	}

	ranking := engine.Rank(rec.FAQ, question, engine.FAQProfile())
	answers := faqItems(rec.FAQ)
	if ranking.Matched {
		answers = scoredFAQItems(ranking.Entries)
	}

	s.logger.Debug("FAQ search",
		zap.String("sku", rec.Identifier),
		zap.String("question", question),
		zap.Int("matches", len(ranking.Entries)),
	)

	return &dto.FAQSearchResponse{
		Product:  rec.Product.Model,
		Question: question,
		Answers:  answers,
		Matched:  ranking.Matched,
	}, nil
}

func (s *SupportService) ListTroubleshooting(ctx context.Context, productQuery string) (*dto.TroubleshootingListResponse, error) {
	rec, err := s.resolve(ctx, productQuery, engine.Resolver{})
	if err != nil {
		return nil, err
	}
	return &dto.TroubleshootingListResponse{
		Product:         rec.Product.Model,
		Troubleshooting: troubleshootingItems(rec.Troubleshooting),
	}, nil
}

// Troubleshoot ranks the product's troubleshooting entries against issue.
// When nothing matches, the full list is returned with a general-tips message.
func (s *SupportService) Troubleshoot(ctx context.Context, productQuery, issue string) (*dto.TroubleshootingSearchResponse, error) {
	rec, err := s.resolve(ctx, productQuery, engine.Resolver{})
	if err != nil {
		return nil, err
	}

	ranking := engine.Rank(rec.Troubleshooting, issue, engine.TroubleshootingProfile())

	s.logger.Debug("Troubleshooting search",
		zap.String("sku", rec.Identifier),
		zap.String("issue", issue),
		zap.Int("matches", len(ranking.Entries)),
	)

	resp := &dto.TroubleshootingSearchResponse{
		Product: rec.Product.Model,
		Issue:   issue,
		Matched: ranking.Matched,
		Support: rec.Support,
	}
	if ranking.Matched {
		resp.Troubleshooting = scoredTroubleshootingItems(ranking.Entries)
	} else {
		resp.Message = NoTroubleshootingMatchMessage
		resp.Troubleshooting = troubleshootingItems(rec.Troubleshooting)
	}
	return resp, nil
}

func (s *SupportService) ListInstallation(ctx context.Context, productQuery string) (*dto.InstallationListResponse, error) {
	rec, err := s.resolve(ctx, productQuery, engine.Resolver{})
	if err != nil {
		return nil, err
	}
	return &dto.InstallationListResponse{
		Product:            rec.Product.Model,
		InstallationTopics: installationItems(rec.InstallationTopics),
		Documents:          rec.DocumentURLs,
	}, nil
}

// InstallationGuide ranks the product's installation topics against topic,
// falling back to every topic when nothing matches.
func (s *SupportService) InstallationGuide(ctx context.Context, productQuery, topic string) (*dto.InstallationSearchResponse, error) {
	rec, err := s.resolve(ctx, productQuery, engine.Resolver{})
	if err != nil {
		return nil, err
	}

	ranking := engine.Rank(rec.InstallationTopics, topic, engine.InstallationProfile())
	guides := installationItems(rec.InstallationTopics)
	if ranking.Matched {
		guides = scoredInstallationItems(ranking.Entries)
	}

	return &dto.InstallationSearchResponse{
		Product:   rec.Product.Model,
		Topic:     topic,
		Guides:    guides,
		Matched:   ranking.Matched,
		Documents: rec.DocumentURLs,
	}, nil
}

func (s *SupportService) resolve(ctx context.Context, query string, resolver engine.Resolver) (*models.KnowledgeRecord, error) {
	if isBlank(query) {
		return nil, ErrProductQueryRequired
	}

	catalog, err := s.store.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := resolver.Resolve(catalog.Records(), query)
	if !ok {
		s.logger.Info("Product not found", zap.String("query", query))
		return nil, ErrProductNotFound
	}
	return rec, nil
}
