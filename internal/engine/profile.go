package engine

import (
	"fmt"

	"support-kb/internal/models"
)

// FieldWeight is the score one keyword hit in Field contributes.
type FieldWeight struct {
	Field  models.Field
	Weight int
}

// Profile describes how entries of one kind are scored.
type Profile struct {
	Kind           models.EntryKind
	MinTokenLength int
	Fields         []FieldWeight
	// CauseWeight and SolutionWeight apply per keyword per cause/solution
	// pair of a RemedyEntry.
	CauseWeight    int
	SolutionWeight int
}

func FAQProfile() Profile {
	return Profile{
		Kind:           models.EntryKindFAQ,
		MinTokenLength: 3,
		Fields: []FieldWeight{
			{Field: models.FieldQuestion, Weight: 10},
			{Field: models.FieldAnswer, Weight: 3},
		},
	}
}

func TroubleshootingProfile() Profile {
	return Profile{
		Kind:           models.EntryKindTroubleshooting,
		MinTokenLength: 3,
		Fields: []FieldWeight{
			{Field: models.FieldIssue, Weight: 10},
			{Field: models.FieldSymptoms, Weight: 5},
		},
		CauseWeight:    3,
		SolutionWeight: 2,
	}
}

func InstallationProfile() Profile {
	return Profile{
		Kind:           models.EntryKindInstallation,
		MinTokenLength: 2,
		Fields: []FieldWeight{
			{Field: models.FieldTopic, Weight: 15},
			{Field: models.FieldTitle, Weight: 10},
			{Field: models.FieldContent, Weight: 3},
		},
	}
}

// ProfileFor returns the scoring profile of kind.
func ProfileFor(kind models.EntryKind) (Profile, error) {
	switch kind {
	case models.EntryKindFAQ:
		return FAQProfile(), nil
	case models.EntryKindTroubleshooting:
		return TroubleshootingProfile(), nil
	case models.EntryKindInstallation:
		return InstallationProfile(), nil
	}
	return Profile{}, fmt.Errorf("no scoring profile for entry kind %q", kind)
}
