package source

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTitleTokens(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"plain", "Weird Wizard", []string{"Weird", "Wizard"}},
		{"joiners stripped", "Shadow of the Weird Wizard", []string{"Shadow", "of", "Weird", "Wizard"}},
		{"subtitle stripped", "Weird Wizard: Player's Guide", []string{"Weird", "Wizard"}},
		{"punctuation dropped", "Lairs, Lore & Legends!", []string{"Lairs", "Lore", "Legends"}},
		{"apostrophes kept", "GM's Toolkit", []string{"GM's", "Toolkit"}},
		{"empty", "", nil},
		{"only joiners", "The A And", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleTokens(tt.title))
		})
	}
}

func TestSearchPhrase(t *testing.T) {
	assert.Equal(t, "Shadow of Weird Wizard", SearchPhrase("Shadow of the Weird Wizard: Core Rules"))
	assert.Equal(t, "", SearchPhrase(""))
}
