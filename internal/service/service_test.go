package service

import (
	"context"
	"errors"
	"sync"

	"support-kb/internal/models"

	"github.com/google/uuid"
)

// staticSource serves a fixed record set and counts loads.
type staticSource struct {
	mu      sync.Mutex
	records []*models.KnowledgeRecord
	err     error
	loads   int
}

func (s *staticSource) LoadAll(ctx context.Context) ([]*models.KnowledgeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *staticSource) set(records []*models.KnowledgeRecord, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.err = err
}

func (s *staticSource) loadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

type memoryIssueStore struct {
	created []*models.SupportIssue
	err     error
}

func (m *memoryIssueStore) Create(ctx context.Context, issue *models.SupportIssue) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, issue)
	return nil
}

type skuLookup map[string]uuid.UUID

func (l skuLookup) GetIDBySKU(ctx context.Context, sku string) (*uuid.UUID, error) {
	if sku == "broken" {
		return nil, errors.New("connection refused")
	}
	id, ok := l[sku]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func fixtureRecords() []*models.KnowledgeRecord {
	return []*models.KnowledgeRecord{
		{
			Identifier: "93548",
			Product:    models.ProductInfo{Model: "UA 2-125", FullName: "Sonance UA 2-125 Amplifier", Category: "amplifiers"},
			FAQ: []models.FAQEntry{
				{Question: "How do I pair the speaker", Answer: "Use the app"},
				{Question: "Power issue", Answer: "Check the pairing light and power cable"},
			},
			Troubleshooting: []models.TroubleshootingEntry{
				{Issue: "No sound", CausesSolutions: []models.CauseSolution{{Cause: "Cable unplugged", Solution: "Reconnect cable"}}},
				{Issue: "Amplifier overheating", Symptoms: "Protect light"},
			},
			InstallationTopics: []models.InstallationEntry{
				{Topic: "hdmi", Title: "HDMI ARC", Content: "Use the ARC port"},
				{Topic: "rack", Title: "Rack mounting", Content: "Leave 1U above"},
			},
			DocumentURLs: map[string]any{"manual": "https://example.com/ua.pdf"},
			Support:      map[string]any{"phone": "(949) 492-7777"},
		},
		{
			Identifier: "10001",
			Product:    models.ProductInfo{Model: "", FullName: "Landscape Subwoofer"},
		},
	}
}
