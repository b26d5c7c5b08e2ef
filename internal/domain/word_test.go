package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"night.", "night"},
		{"really!", "really"},
		{"what?", "what"},
		{"pause,", "pause"},
		{"etc..", "etc."},
		{"plain", "plain"},
		{"", ""},
		{".", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanWord(tt.in), "input %q", tt.in)
	}
}

func TestGlossaryLookup_FirstMatchWins(t *testing.T) {
	g := Glossary{
		{Word: "bank", Translation: "orilla"},
		{Word: "bank", Translation: "banco"},
		{Word: "tree", Translation: "árbol"},
	}

	entry, ok := g.Lookup("bank")
	assert.True(t, ok)
	assert.Equal(t, "orilla", entry.Translation)

	_, ok = g.Lookup("river")
	assert.False(t, ok)
}

func TestGlossaryWithout_RemovesAllMatches(t *testing.T) {
	g := Glossary{
		{Word: "bank", Translation: "orilla"},
		{Word: "tree", Translation: "árbol"},
		{Word: "bank", Translation: "banco"},
	}

	got := g.Without("bank")
	assert.Len(t, got, 1)
	assert.Equal(t, "tree", got[0].Word)
	assert.False(t, got.Contains("bank"))
}

func TestFavoriteList(t *testing.T) {
	f := FavoriteList{"1984", "Dracula"}
	assert.True(t, f.Contains("1984"))
	assert.False(t, f.Contains("Emma"))

	got := f.Without("1984")
	assert.Equal(t, FavoriteList{"Dracula"}, got)
}

func TestPercentFor(t *testing.T) {
	assert.Equal(t, 0, PercentFor(0, 10))
	assert.Equal(t, 50, PercentFor(5, 10))
	assert.Equal(t, 100, PercentFor(10, 10))
	assert.Equal(t, 33, PercentFor(1, 3))
	assert.Equal(t, 67, PercentFor(2, 3))
	assert.Equal(t, 0, PercentFor(3, 0))
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("B2"))
	assert.False(t, ValidLevel("D1"))
	assert.False(t, ValidLevel(""))
}
