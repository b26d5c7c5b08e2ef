package domain

import "strings"

// WordEntry is one saved word and its translation in the personal glossary.
// Duplicate words are permitted; the glossary is an ordered list, not a map.
type WordEntry struct {
	Word        string `json:"word"`
	Translation string `json:"meaning"`
}

// Glossary is the persisted personal word list, in insertion order.
type Glossary []WordEntry

// CleanWord strips a single trailing punctuation mark from a word picked
// out of running text. Only one mark is removed; "etc.." keeps one dot.
func CleanWord(w string) string {
	if len(w) > 0 && strings.ContainsRune(".,!?", rune(w[len(w)-1])) {
		return w[:len(w)-1]
	}
	return w
}

// Lookup returns the first entry whose word matches exactly.
// Duplicate words may exist; only the first is surfaced.
func (g Glossary) Lookup(word string) (WordEntry, bool) {
	for _, e := range g {
		if e.Word == word {
			return e, true
		}
	}
	return WordEntry{}, false
}

// Contains reports whether any entry has the given word.
func (g Glossary) Contains(word string) bool {
	_, ok := g.Lookup(word)
	return ok
}

// Without returns a copy with every entry matching word removed.
func (g Glossary) Without(word string) Glossary {
	out := make(Glossary, 0, len(g))
	for _, e := range g {
		if e.Word != word {
			out = append(out, e)
		}
	}
	return out
}
