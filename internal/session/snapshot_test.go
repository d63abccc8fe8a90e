package session

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/quiz-game/internal/question"
)

func newTestSnapshotStore(t *testing.T) *SnapshotStore {
	t.Helper()
	return NewSnapshotStore(filepath.Join(t.TempDir(), "save_progress.txt"), zerolog.Nop())
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := newTestSnapshotStore(t)

	saved := State{
		Player:     "ada",
		Category:   "science",
		Difficulty: question.DifficultyMedium,
		Seed:       1712345678,
		Index:      4,
		Score:      -3,
		Correct:    2,
		Wrong:      2,
		Lifelines:  Lifelines{FiftyFifty: true, ExtraTime: true},
	}
	store.Save(saved)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadWithoutSnapshot(t *testing.T) {
	store := newTestSnapshotStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSavedSession)
}

func TestClearRemovesSnapshot(t *testing.T) {
	store := newTestSnapshotStore(t)
	store.Save(State{Player: "ada"})

	store.Clear()
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSavedSession)

	// clearing an empty slot is not an error
	store.Clear()
}

func TestDecodeIgnoresUnknownKeysAndDefaultsMissing(t *testing.T) {
	raw := strings.Join([]string{
		"PLAYER:grace",
		"CHECKSUM:deadbeef", // unknown key, ignored
		"SEED:77",
		"5050:1",
		"not a key value line",
	}, "\n")

	st := decodeState(strings.NewReader(raw))

	assert.Equal(t, "grace", st.Player)
	assert.Equal(t, int64(77), st.Seed)
	assert.True(t, st.Lifelines.FiftyFifty)
	// missing keys stay at type defaults
	assert.Zero(t, st.Index)
	assert.Zero(t, st.Score)
	assert.Equal(t, question.DifficultyEasy, st.Difficulty)
	assert.False(t, st.Lifelines.Skip)
}

func TestEncodeUsesSnapshotKeyFormat(t *testing.T) {
	data := string(encodeState(State{
		Player:     "ada",
		Category:   "iq",
		Difficulty: question.DifficultyHard,
		Seed:       9,
		Lifelines:  Lifelines{Replace: true},
	}))

	assert.Contains(t, data, "PLAYER:ada\n")
	assert.Contains(t, data, "CAT:iq\n")
	assert.Contains(t, data, "DIFF:H\n")
	assert.Contains(t, data, "SEED:9\n")
	assert.Contains(t, data, "REP:1\n")
	assert.Contains(t, data, "SKIP:0\n")
}

func TestLifelinesAreOneShot(t *testing.T) {
	var l Lifelines

	assert.True(t, l.UseFiftyFifty())
	assert.False(t, l.UseFiftyFifty(), "second use is rejected")
	assert.True(t, l.UseSkip())
	assert.False(t, l.UseSkip())
	assert.True(t, l.UseReplace())
	assert.False(t, l.UseReplace())
	assert.True(t, l.UseExtraTime())
	assert.False(t, l.UseExtraTime())
}
