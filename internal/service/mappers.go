package service

import (
	"support-kb/internal/dto"
	"support-kb/internal/engine"
	"support-kb/internal/models"
)

func faqItems(entries []models.FAQEntry) []dto.FAQItem {
	items := make([]dto.FAQItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FAQItem{Question: e.Question, Answer: e.Answer})
	}
	return items
}

func scoredFAQItems(entries []engine.ScoredEntry[models.FAQEntry]) []dto.FAQItem {
	items := make([]dto.FAQItem, 0, len(entries))
	for _, se := range entries {
		items = append(items, dto.FAQItem{Question: se.Entry.Question, Answer: se.Entry.Answer, Score: se.Score})
	}
	return items
}

func troubleshootingItem(e models.TroubleshootingEntry, score int) dto.TroubleshootingItem {
	return dto.TroubleshootingItem{
		Issue:           e.Issue,
		Symptoms:        e.Symptoms,
		CausesSolutions: e.CausesSolutions,
		Score:           score,
	}
}

func troubleshootingItems(entries []models.TroubleshootingEntry) []dto.TroubleshootingItem {
	items := make([]dto.TroubleshootingItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, troubleshootingItem(e, 0))
	}
	return items
}

func scoredTroubleshootingItems(entries []engine.ScoredEntry[models.TroubleshootingEntry]) []dto.TroubleshootingItem {
	items := make([]dto.TroubleshootingItem, 0, len(entries))
	for _, se := range entries {
		items = append(items, troubleshootingItem(se.Entry, se.Score))
	}
	return items
}

func installationItems(entries []models.InstallationEntry) []dto.InstallationItem {
	items := make([]dto.InstallationItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.InstallationItem{Topic: e.Topic, Title: e.Title, Content: e.Content})
	}
	return items
}

func scoredInstallationItems(entries []engine.ScoredEntry[models.InstallationEntry]) []dto.InstallationItem {
	items := make([]dto.InstallationItem, 0, len(entries))
	for _, se := range entries {
		items = append(items, dto.InstallationItem{
			Topic:   se.Entry.Topic,
			Title:   se.Entry.Title,
			Content: se.Entry.Content,
			Score:   se.Score,
		})
	}
	return items
}
