package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"support-kb/internal/models"

	"go.uber.org/zap"
)

// KnowledgeSource loads every knowledge record from a backing store.
type KnowledgeSource interface {
	LoadAll(ctx context.Context) ([]*models.KnowledgeRecord, error)
}

// KnowledgeStore owns the process-wide knowledge snapshot. The snapshot is
// loaded on first use and then served read-only until Reload replaces it.
// An empty load is not kept, so the next call tries again.
type KnowledgeStore struct {
	source   KnowledgeSource
	logger   *zap.Logger
	mu       sync.Mutex
	snapshot atomic.Pointer[models.Catalog]
}

func NewKnowledgeStore(source KnowledgeSource, logger *zap.Logger) *KnowledgeStore {
	return &KnowledgeStore{
		source: source,
		logger: logger,
	}
}

// Catalog returns the current snapshot, loading it if necessary.
func (s *KnowledgeStore) Catalog(ctx context.Context) (*models.Catalog, error) {
	if c := s.snapshot.Load(); c != nil {
		return c, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.snapshot.Load(); c != nil {
		return c, nil
	}
	return s.load(ctx)
}

// Reload replaces the snapshot with a fresh load. On failure the previous
// snapshot stays in place.
func (s *KnowledgeStore) Reload(ctx context.Context) (*models.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *KnowledgeStore) load(ctx context.Context) (*models.Catalog, error) {
	records, err := s.source.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge: %w", err)
	}

	catalog := models.NewCatalog(records)
	if catalog.Len() == 0 {
		s.logger.Warn("Knowledge source returned no products")
		return catalog, nil
	}

	s.snapshot.Store(catalog)
	s.logger.Info("Knowledge snapshot loaded", zap.Int("products", catalog.Len()))
	return catalog, nil
}
