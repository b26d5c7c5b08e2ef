package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmateapp/readmate-server/internal/domain"
)

func TestGlossary_EmptyByDefault(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	glossary, err := s.Glossary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, glossary)
}

func TestAddWord_TrimsTrailingPunctuation(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	entry, err := s.AddWord(ctx, "night.", "noche!")
	require.NoError(t, err)
	assert.Equal(t, domain.WordEntry{Word: "night", Translation: "noche"}, entry)

	glossary, err := s.Glossary(ctx)
	require.NoError(t, err)
	require.Len(t, glossary, 1)
	assert.Equal(t, entry, glossary[0])
}

func TestAddWord_DuplicatesPermitted(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	_, err := s.AddWord(ctx, "bank", "orilla")
	require.NoError(t, err)
	_, err = s.AddWord(ctx, "bank", "banco")
	require.NoError(t, err)

	glossary, err := s.Glossary(ctx)
	require.NoError(t, err)
	assert.Len(t, glossary, 2)

	// Lookup surfaces the first addition.
	entry, ok := glossary.Lookup("bank")
	assert.True(t, ok)
	assert.Equal(t, "orilla", entry.Translation)
}

func TestAddWord_PreservesInsertionOrder(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	words := []string{"uno", "dos", "tres", "cuatro"}
	for _, w := range words {
		_, err := s.AddWord(ctx, w, "t-"+w)
		require.NoError(t, err)
	}

	glossary, err := s.Glossary(ctx)
	require.NoError(t, err)
	require.Len(t, glossary, len(words))
	for i, w := range words {
		assert.Equal(t, w, glossary[i].Word)
	}
}

func TestRemoveWord_RemovesAllMatches(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	_, err := s.AddWord(ctx, "bank", "orilla")
	require.NoError(t, err)
	_, err = s.AddWord(ctx, "tree", "árbol")
	require.NoError(t, err)
	_, err = s.AddWord(ctx, "bank", "banco")
	require.NoError(t, err)

	require.NoError(t, s.RemoveWord(ctx, "bank"))

	glossary, err := s.Glossary(ctx)
	require.NoError(t, err)
	require.Len(t, glossary, 1)
	assert.Equal(t, "tree", glossary[0].Word)
}

func TestRemoveWord_UnknownIsNoOp(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, s.RemoveWord(context.Background(), "nothing"))
}
