package models

// EntryKind tags the variant of an Entry.
type EntryKind string

const (
	EntryKindFAQ             EntryKind = "faq"
	EntryKindTroubleshooting EntryKind = "troubleshooting"
	EntryKindInstallation    EntryKind = "installation"
)

// Field names a scorable text field of an entry.
type Field string

const (
	FieldQuestion Field = "question"
	FieldAnswer   Field = "answer"
	FieldIssue    Field = "issue"
	FieldSymptoms Field = "symptoms"
	FieldTopic    Field = "topic"
	FieldTitle    Field = "title"
	FieldContent  Field = "content"
)

// Entry is one FAQ, troubleshooting or installation item. The set of
// implementations is closed to this package.
type Entry interface {
	Kind() EntryKind
	// Text returns the raw text of field, or "" when the entry has no such field.
	Text(field Field) string
	sealed()
}

// RemedyEntry is implemented by entries that carry cause/solution pairs.
type RemedyEntry interface {
	Entry
	Remedies() []CauseSolution
}

type FAQEntry struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

func (FAQEntry) Kind() EntryKind { return EntryKindFAQ }

func (e FAQEntry) Text(field Field) string {
	switch field {
	case FieldQuestion:
		return e.Question
	case FieldAnswer:
		return e.Answer
	}
	return ""
}

func (FAQEntry) sealed() {}

type CauseSolution struct {
	Cause    string `json:"cause" yaml:"cause"`
	Solution string `json:"solution" yaml:"solution"`
}

type TroubleshootingEntry struct {
	Issue           string          `json:"issue" yaml:"issue"`
	Symptoms        string          `json:"symptoms,omitempty" yaml:"symptoms,omitempty"`
	CausesSolutions []CauseSolution `json:"causes_solutions,omitempty" yaml:"causes_solutions,omitempty"`
}

func (TroubleshootingEntry) Kind() EntryKind { return EntryKindTroubleshooting }

func (e TroubleshootingEntry) Text(field Field) string {
	switch field {
	case FieldIssue:
		return e.Issue
	case FieldSymptoms:
		return e.Symptoms
	}
	return ""
}

func (e TroubleshootingEntry) Remedies() []CauseSolution { return e.CausesSolutions }

func (TroubleshootingEntry) sealed() {}

type InstallationEntry struct {
	Topic   string `json:"topic" yaml:"topic"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

func (InstallationEntry) Kind() EntryKind { return EntryKindInstallation }

func (e InstallationEntry) Text(field Field) string {
	switch field {
	case FieldTopic:
		return e.Topic
	case FieldTitle:
		return e.Title
	case FieldContent:
		return e.Content
	}
	return ""
}

func (InstallationEntry) sealed() {}
