package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"support-kb/internal/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// knowledgeFileNames are tried in order inside each product directory.
var knowledgeFileNames = []string{"knowledge.json", "knowledge.yaml", "knowledge.yml"}

// KnowledgeFile locates the knowledge document of one product.
type KnowledgeFile struct {
	SKU  string
	Path string
}

// FileKnowledgeSource loads knowledge records from <dir>/<sku>/knowledge.{json,yaml}.
type FileKnowledgeSource struct {
	dir    string
	logger *zap.Logger
}

func NewFileKnowledgeSource(dir string, logger *zap.Logger) *FileKnowledgeSource {
	return &FileKnowledgeSource{
		dir:    dir,
		logger: logger,
	}
}

// Files lists the knowledge documents under the source directory, ordered by SKU.
func (s *FileKnowledgeSource) Files() ([]KnowledgeFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read products directory: %w", err)
	}

	var files []KnowledgeFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path, ok := findKnowledgeFile(filepath.Join(s.dir, entry.Name()))
		if !ok {
			s.logger.Debug("No knowledge file in product directory", zap.String("sku", entry.Name()))
			continue
		}
		files = append(files, KnowledgeFile{SKU: entry.Name(), Path: path})
	}

	return files, nil
}

// LoadAll decodes every knowledge document. Documents that fail to decode are
// logged and skipped.
func (s *FileKnowledgeSource) LoadAll(ctx context.Context) ([]*models.KnowledgeRecord, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	records := make([]*models.KnowledgeRecord, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := DecodeKnowledgeFile(f)
		if err != nil {
			s.logger.Error("Failed to load product knowledge", zap.String("sku", f.SKU), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}

	s.logger.Info("Loaded product knowledge from files",
		zap.String("dir", s.dir),
		zap.Int("products", len(records)),
	)

	return records, nil
}

// DecodeKnowledgeFile reads and parses one knowledge document.
func DecodeKnowledgeFile(f KnowledgeFile) (*models.KnowledgeRecord, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}

	rec, err := DecodeKnowledge(data, filepath.Ext(f.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.Path, err)
	}
	rec.Identifier = f.SKU
	return rec, nil
}

// DecodeKnowledge parses a knowledge document; ext selects YAML (".yaml",
// ".yml") or JSON (anything else).
func DecodeKnowledge(data []byte, ext string) (*models.KnowledgeRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty knowledge document")
	}

	var rec models.KnowledgeRecord
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}

func findKnowledgeFile(dir string) (string, bool) {
	for _, name := range knowledgeFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
