package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"support-kb/internal/models"
	"support-kb/internal/repository"

	"go.uber.org/zap"
)

// ProcessedFile represents an imported knowledge document in cache
type ProcessedFile struct {
	SKU        string    `json:"sku"`
	FilePath   string    `json:"file_path"`
	FileHash   string    `json:"file_hash"`
	ImportedAt time.Time `json:"imported_at"`
}

// CacheData stores information about imported documents
type CacheData struct {
	ProcessedFiles map[string]ProcessedFile `json:"processed_files"` // key: file path
}

type knowledgeFiles interface {
	Files() ([]repository.KnowledgeFile, error)
}

type productWriter interface {
	Upsert(ctx context.Context, rec *models.KnowledgeRecord) error
}

type importStats struct {
	Imported  int
	Unchanged int
	Failed    int
}

// loadCache loads the cache of imported documents
func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		ProcessedFiles: make(map[string]ProcessedFile),
	}

	if _, err := os.Stat(cacheFile); os.IsNotExist(err) {
		return cache, nil
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	if cache.ProcessedFiles == nil {
		cache.ProcessedFiles = make(map[string]ProcessedFile)
	}

	return cache, nil
}

// saveCache saves the cache of imported documents
func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// calculateFileHash calculates MD5 hash of a file
func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// importKnowledge upserts every knowledge document whose content changed
// since the last import. A document that fails to parse or store is logged
// and left out of the cache so the next run retries it.
func importKnowledge(
	ctx context.Context,
	source knowledgeFiles,
	products productWriter,
	cache *CacheData,
	logger *zap.Logger,
) (importStats, error) {
	var stats importStats

	files, err := source.Files()
	if err != nil {
		return stats, fmt.Errorf("failed to list knowledge documents: %w", err)
	}

	now := time.Now()
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		fileHash, err := calculateFileHash(f.Path)
		if err != nil {
			logger.Warn("Failed to calculate file hash, will import anyway", zap.String("path", f.Path), zap.Error(err))
		}

		if cached, exists := cache.ProcessedFiles[f.Path]; exists && fileHash != "" {
			if cached.FileHash == fileHash {
				logger.Debug("Knowledge document unchanged, skipping", zap.String("path", f.Path))
				stats.Unchanged++
				continue
			}
			logger.Info("Knowledge document changed, reimporting",
				zap.String("path", f.Path),
				zap.String("old_hash", cached.FileHash),
				zap.String("new_hash", fileHash),
			)
		}

		rec, err := repository.DecodeKnowledgeFile(f)
		if err != nil {
			logger.Error("Failed to parse knowledge document", zap.String("path", f.Path), zap.Error(err))
			stats.Failed++
			continue
		}

		if err := products.Upsert(ctx, rec); err != nil {
			logger.Error("Failed to store product", zap.String("sku", f.SKU), zap.Error(err))
			stats.Failed++
			continue
		}

		logger.Info("Imported product",
			zap.String("sku", f.SKU),
			zap.String("model", rec.ModelName()),
			zap.Int("faq", len(rec.FAQ)),
			zap.Int("troubleshooting", len(rec.Troubleshooting)),
			zap.Int("installation_topics", len(rec.InstallationTopics)),
		)
		stats.Imported++

		cache.ProcessedFiles[f.Path] = ProcessedFile{
			SKU:        f.SKU,
			FilePath:   f.Path,
			FileHash:   fileHash,
			ImportedAt: now,
		}
	}

	return stats, nil
}
