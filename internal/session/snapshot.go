package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-game/internal/question"
)

// ErrNoSavedSession is returned when the save slot is empty.
var ErrNoSavedSession = errors.New("no saved quiz")

// SnapshotStore persists the single save slot as key:value lines. There is at
// most one snapshot at a time; Save overwrites it in place.
type SnapshotStore struct {
	path   string
	logger zerolog.Logger
}

// NewSnapshotStore creates a store over the given snapshot file path.
func NewSnapshotStore(path string, logger zerolog.Logger) *SnapshotStore {
	return &SnapshotStore{path: path, logger: logger}
}

// Save overwrites the snapshot with the given state. Write failures are
// swallowed so the session can continue; they are logged at warn level.
func (s *SnapshotStore) Save(st State) {
	if err := os.WriteFile(s.path, encodeState(st), 0o644); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot write failed")
	}
}

// Load reads the snapshot. Absence of the file means ErrNoSavedSession.
func (s *SnapshotStore) Load() (State, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return State{}, ErrNoSavedSession
	}
	if err != nil {
		return State{}, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return decodeState(f), nil
}

// Clear deletes the snapshot once a session has completed.
func (s *SnapshotStore) Clear() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Msg("snapshot removal failed")
	}
}

func encodeState(st State) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "PLAYER:%s\n", st.Player)
	fmt.Fprintf(&b, "CAT:%s\n", st.Category)
	fmt.Fprintf(&b, "DIFF:%s\n", st.Difficulty.Letter())
	fmt.Fprintf(&b, "SEED:%d\n", st.Seed)
	fmt.Fprintf(&b, "INDEX:%d\n", st.Index)
	fmt.Fprintf(&b, "SCORE:%d\n", st.Score)
	fmt.Fprintf(&b, "CORRECT:%d\n", st.Correct)
	fmt.Fprintf(&b, "WRONG:%d\n", st.Wrong)
	fmt.Fprintf(&b, "5050:%s\n", flag(st.Lifelines.FiftyFifty))
	fmt.Fprintf(&b, "SKIP:%s\n", flag(st.Lifelines.Skip))
	fmt.Fprintf(&b, "REP:%s\n", flag(st.Lifelines.Replace))
	fmt.Fprintf(&b, "EXTRA:%s\n", flag(st.Lifelines.ExtraTime))
	return []byte(b.String())
}

// decodeState parses key:value lines into a typed state. Unrecognized keys
// are ignored and missing keys leave fields at their zero value; a truncated
// snapshot is an accepted durability gap, not an error.
func decodeState(r io.Reader) State {
	var st State
	st.Difficulty = question.DifficultyEasy

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		switch key {
		case "PLAYER":
			st.Player = value
		case "CAT":
			st.Category = value
		case "DIFF":
			if value != "" {
				st.Difficulty = question.ParseDifficulty(value[0])
			}
		case "SEED":
			st.Seed, _ = strconv.ParseInt(value, 10, 64)
		case "INDEX":
			st.Index, _ = strconv.Atoi(value)
		case "SCORE":
			st.Score, _ = strconv.Atoi(value)
		case "CORRECT":
			st.Correct, _ = strconv.Atoi(value)
		case "WRONG":
			st.Wrong, _ = strconv.Atoi(value)
		case "5050":
			st.Lifelines.FiftyFifty = value == "1"
		case "SKIP":
			st.Lifelines.Skip = value == "1"
		case "REP":
			st.Lifelines.Replace = value == "1"
		case "EXTRA":
			st.Lifelines.ExtraTime = value == "1"
		}
	}
	return st
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
