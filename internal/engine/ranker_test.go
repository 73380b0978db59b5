package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"support-kb/internal/models"
)

func TestRank_FAQOrdersByScore(t *testing.T) {
	faqs := []models.FAQEntry{
		{Question: "How do I pair the speaker", Answer: "Use the app"},
		{Question: "Power issue", Answer: "Check the pairing light and power cable"},
	}

	ranking := Rank(faqs, "pair power", FAQProfile())

	require.True(t, ranking.Matched)
	require.Len(t, ranking.Entries, 2)
	// power: question 10 + answer 3; pair: answer 3 ("pairing")
	assert.Equal(t, "Power issue", ranking.Entries[0].Entry.Question)
	assert.Equal(t, 16, ranking.Entries[0].Score)
	assert.Equal(t, "How do I pair the speaker", ranking.Entries[1].Entry.Question)
	assert.Equal(t, 10, ranking.Entries[1].Score)
}

func TestRank_TroubleshootingCausesAndSolutions(t *testing.T) {
	entries := []models.TroubleshootingEntry{
		{
			Issue:    "No sound",
			Symptoms: "",
			CausesSolutions: []models.CauseSolution{
				{Cause: "Cable unplugged", Solution: "Reconnect cable"},
			},
		},
	}

	ranking := Rank(entries, "cable", TroubleshootingProfile())

	require.True(t, ranking.Matched)
	require.Len(t, ranking.Entries, 1)
	assert.Equal(t, 5, ranking.Entries[0].Score)
}

func TestRank_TroubleshootingSumsAcrossPairs(t *testing.T) {
	entries := []models.TroubleshootingEntry{
		{
			Issue:    "Amplifier shuts off",
			Symptoms: "Protect light turns on",
			CausesSolutions: []models.CauseSolution{
				{Cause: "Overheating amplifier", Solution: "Improve ventilation"},
				{Cause: "Shorted speaker wire", Solution: "Check amplifier outputs"},
			},
		},
	}

	// amplifier: issue 10 + cause 3 + solution 2; protect: symptoms 5
	ranking := Rank(entries, "amplifier protect", TroubleshootingProfile())

	require.Len(t, ranking.Entries, 1)
	assert.Equal(t, 20, ranking.Entries[0].Score)
}

func TestRank_InstallationWeightsAndShortTokens(t *testing.T) {
	guides := []models.InstallationEntry{
		{Topic: "hdmi", Title: "HDMI ARC setup", Content: "Connect the TV using the ARC port"},
		{Topic: "ir", Title: "IR control", Content: "Learn codes from the remote"},
		{Topic: "mounting", Title: "Wall mount", Content: "Use the bracket"},
	}

	tests := []struct {
		name       string
		query      string
		wantTopics []string
		wantScores []int
	}{
		{"topic and title hit", "hdmi", []string{"hdmi"}, []int{25}},
		{"two letter token counts", "IR", []string{"ir"}, []int{25}},
		{"single letter dropped", "a", nil, nil},
		{"content only", "bracket", []string{"mounting"}, []int{3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ranking := Rank(guides, tc.query, InstallationProfile())
			var topics []string
			var scores []int
			for _, e := range ranking.Entries {
				topics = append(topics, e.Entry.Topic)
				scores = append(scores, e.Score)
			}
			assert.Equal(t, tc.wantTopics, topics)
			assert.Equal(t, tc.wantScores, scores)
			assert.Equal(t, len(tc.wantTopics) > 0, ranking.Matched)
		})
	}
}

func TestRank_ExcludesZeroScores(t *testing.T) {
	faqs := []models.FAQEntry{
		{Question: "Warranty length", Answer: "Five years"},
		{Question: "Firmware update", Answer: "Use the app"},
	}

	ranking := Rank(faqs, "to be or firmware", FAQProfile())

	require.Len(t, ranking.Entries, 1)
	assert.Equal(t, "Firmware update", ranking.Entries[0].Entry.Question)
}

func TestRank_NoMatch(t *testing.T) {
	faqs := []models.FAQEntry{{Question: "Warranty", Answer: "Five years"}}

	ranking := Rank(faqs, "bluetooth", FAQProfile())

	assert.False(t, ranking.Matched)
	assert.NotNil(t, ranking.Entries)
	assert.Empty(t, ranking.Entries)
}

func TestRank_EmptyInputs(t *testing.T) {
	assert.False(t, Rank([]models.FAQEntry(nil), "pair", FAQProfile()).Matched)
	assert.False(t, Rank([]models.FAQEntry{{Question: "pair"}}, "   ", FAQProfile()).Matched)
}

func TestRank_StableTies(t *testing.T) {
	faqs := []models.FAQEntry{
		{Question: "Zone one volume", Answer: "a"},
		{Question: "Other", Answer: "b"},
		{Question: "Zone two volume", Answer: "c"},
		{Question: "Zone three volume", Answer: "d"},
	}

	ranking := Rank(faqs, "volume", FAQProfile())

	require.Len(t, ranking.Entries, 3)
	assert.Equal(t, "Zone one volume", ranking.Entries[0].Entry.Question)
	assert.Equal(t, "Zone two volume", ranking.Entries[1].Entry.Question)
	assert.Equal(t, "Zone three volume", ranking.Entries[2].Entry.Question)
}

func TestRank_DuplicateTokensCountTwice(t *testing.T) {
	faqs := []models.FAQEntry{{Question: "Reset the amp", Answer: ""}}

	once := Rank(faqs, "reset", FAQProfile())
	twice := Rank(faqs, "reset reset", FAQProfile())

	require.Len(t, once.Entries, 1)
	require.Len(t, twice.Entries, 1)
	assert.Equal(t, 10, once.Entries[0].Score)
	assert.Equal(t, 20, twice.Entries[0].Score)
}

func TestRank_CaseInsensitive(t *testing.T) {
	faqs := []models.FAQEntry{{Question: "BLUETOOTH pairing", Answer: ""}}

	ranking := Rank(faqs, "Bluetooth", FAQProfile())

	require.Len(t, ranking.Entries, 1)
	assert.Equal(t, 10, ranking.Entries[0].Score)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	faqs := []models.FAQEntry{
		{Question: "low", Answer: "pair"},
		{Question: "pair high", Answer: ""},
	}
	before := append([]models.FAQEntry(nil), faqs...)

	_ = Rank(faqs, "pair", FAQProfile())

	assert.Equal(t, before, faqs)
}

func TestRank_MonotonicInHighestWeightField(t *testing.T) {
	base := models.FAQEntry{Question: "volume", Answer: ""}
	more := models.FAQEntry{Question: "volume volume", Answer: ""}

	a := Score(base, Tokenize("volume", 3), FAQProfile())
	b := Score(more, Tokenize("volume", 3), FAQProfile())

	assert.GreaterOrEqual(t, b, a)
}

func TestScore_ProfileWithoutRemedyWeightsIgnoresPairs(t *testing.T) {
	entry := models.TroubleshootingEntry{
		Issue:           "hum",
		CausesSolutions: []models.CauseSolution{{Cause: "ground loop", Solution: "isolator"}},
	}
	profile := TroubleshootingProfile()
	profile.CauseWeight = 0
	profile.SolutionWeight = 0

	assert.Zero(t, Score(entry, []string{"ground"}, profile))
}

func TestProfileFor(t *testing.T) {
	for _, kind := range []models.EntryKind{
		models.EntryKindFAQ,
		models.EntryKindTroubleshooting,
		models.EntryKindInstallation,
	} {
		p, err := ProfileFor(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, p.Kind)
	}

	_, err := ProfileFor("manual")
	assert.Error(t, err)
}
