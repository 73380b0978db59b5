package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		minLength int
		want      []string
	}{
		{"lower cases", "No SOUND", 2, []string{"no", "sound"}},
		{"drops short tokens", "no sound at all", 3, []string{"sound", "all"}},
		{"collapses whitespace", "  hdmi \t\n arc  ", 2, []string{"hdmi", "arc"}},
		{"keeps duplicates", "hum hum", 3, []string{"hum", "hum"}},
		{"counts runes", "été", 3, []string{"été"}},
		{"empty", "   ", 1, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.query, tc.minLength))
		})
	}
}
