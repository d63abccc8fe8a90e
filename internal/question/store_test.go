package question

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, categories ...string) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	if len(categories) == 0 {
		categories = []string{"science"}
	}
	return NewFileStore(dir, categories, zerolog.Nop()), dir
}

func writeCategory(t *testing.T, dir, category, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, category+".txt"), []byte(content), 0o644))
}

func TestLoadParsesCategoryFile(t *testing.T) {
	store, dir := newTestStore(t)
	writeCategory(t, dir, "science", `
Q: What freezes at 0 C?
A) Water
B) Oil
C) Mercury
D) Alcohol
ANSWER: a
DIFF: e
---

Q: Atomic number of helium?
A) 1
B) 2
C) 3
D) 4
ANSWER: B
DIFF: M
---
`)

	qs, err := store.Load("science")
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "What freezes at 0 C?", qs[0].Text)
	assert.Equal(t, DifficultyEasy, qs[0].Difficulty)
	assert.Equal(t, byte('A'), qs[0].Correct, "answer letter is normalized to upper case")
	assert.Equal(t, [4]string{"Water", "Oil", "Mercury", "Alcohol"}, qs[0].Options)

	assert.Equal(t, DifficultyMedium, qs[1].Difficulty)
	assert.Equal(t, byte('B'), qs[1].Correct)
}

func TestLoadDefaultsAndIgnoredLines(t *testing.T) {
	store, dir := newTestStore(t)
	// no ANSWER or DIFF lines: defaults are A and Easy; junk lines ignored
	writeCategory(t, dir, "science", `
random noise
Q: Question with defaults?
A) a
B) b
noise in the middle
C) c
D) d
---
`)

	qs, err := store.Load("science")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, byte('A'), qs[0].Correct)
	assert.Equal(t, DifficultyEasy, qs[0].Difficulty)
}

func TestLoadDropsMalformedRecords(t *testing.T) {
	store, dir := newTestStore(t)
	writeCategory(t, dir, "science", `
Q: Missing option D?
A) a
B) b
C) c
---
Q: Complete record?
A) a
B) b
C) c
D) d
ANSWER: C
---
Q: No closing separator?
A) a
B) b
C) c
D) d
`)

	qs, err := store.Load("science")
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Complete record?", qs[0].Text)
}

func TestLoadIsIdempotent(t *testing.T) {
	store, dir := newTestStore(t)
	writeCategory(t, dir, "science", `
Q: Stable parse?
A) a
B) b
C) c
D) d
ANSWER: D
DIFF: H
---
`)

	first, err := store.Load("science")
	require.NoError(t, err)
	second, err := store.Load("science")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadReturnsErrNoQuestionsForEmptyParse(t *testing.T) {
	store, dir := newTestStore(t)
	writeCategory(t, dir, "science", "nothing usable here\n")

	_, err := store.Load("science")
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestLoadSynthesizesSampleFiles(t *testing.T) {
	store, dir := newTestStore(t, "science", "history")

	qs, err := store.Load("science")
	require.NoError(t, err)
	require.Len(t, qs, 2, "sample content has one easy and one medium record")
	assert.Equal(t, DifficultyEasy, qs[0].Difficulty)
	assert.Equal(t, DifficultyMedium, qs[1].Difficulty)

	// every known category got its file, not just the requested one
	_, err = os.Stat(filepath.Join(dir, "history.txt"))
	assert.NoError(t, err)
}

func TestAppendRoundTrips(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load("science") // creates the sample file
	require.NoError(t, err)

	added := Question{
		Difficulty: DifficultyHard,
		Text:       "Added later?",
		Options:    [4]string{"w", "x", "y", "z"},
		Correct:    'D',
	}
	require.NoError(t, store.Append("science", added))

	qs, err := store.Load("science")
	require.NoError(t, err)
	assert.Equal(t, added, qs[len(qs)-1])
}

func TestFilterByDifficulty(t *testing.T) {
	qs := []Question{
		{Text: "e1", Difficulty: DifficultyEasy},
		{Text: "m1", Difficulty: DifficultyMedium},
		{Text: "e2", Difficulty: DifficultyEasy},
	}

	easy := Filter(qs, DifficultyEasy)
	require.Len(t, easy, 2)
	assert.Equal(t, "e1", easy[0].Text)
	assert.Equal(t, "e2", easy[1].Text)
	assert.Empty(t, Filter(qs, DifficultyHard))
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyEasy, ParseDifficulty('e'))
	assert.Equal(t, DifficultyMedium, ParseDifficulty('m'))
	assert.Equal(t, DifficultyHard, ParseDifficulty('H'))
	assert.Equal(t, DifficultyEasy, ParseDifficulty('x'), "unknown letters fall back to easy")
}
