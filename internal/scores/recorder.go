package scores

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-game/internal/question"
)

const timestampLayout = "2006-01-02 15:04:05"

// Entry is one parsed high-score record.
type Entry struct {
	Name      string
	Score     int
	Timestamp string
}

// Recorder appends completed-session results to the high-score and run-log
// files. Both files are append-only; records are never mutated or deleted.
type Recorder struct {
	highScorePath string
	runLogPath    string
	now           func() time.Time
	logger        zerolog.Logger
}

// NewRecorder creates a recorder over the two result files.
func NewRecorder(highScorePath, runLogPath string, logger zerolog.Logger) *Recorder {
	return &Recorder{
		highScorePath: highScorePath,
		runLogPath:    runLogPath,
		now:           time.Now,
		logger:        logger,
	}
}

// RecordHighScore appends one "name|score|timestamp" line. Write failures are
// swallowed so session finalization continues; they are logged at warn level.
func (r *Recorder) RecordHighScore(name string, score int) {
	line := fmt.Sprintf("%s|%d|%s\n", name, score, r.now().Format(timestampLayout))
	r.appendLine(r.highScorePath, line)
}

// RecordRun appends one run-log line for a completed session.
func (r *Recorder) RecordRun(player, category string, diff question.Difficulty, score, correct, wrong int) {
	line := fmt.Sprintf("%s | %s | %s | %s | %d | correct:%d wrong:%d\n",
		r.now().Format(timestampLayout), player, category, diff.Letter(), score, correct, wrong)
	r.appendLine(r.runLogPath, line)
}

// Top returns up to n high-score entries sorted descending by score, ties
// broken by file order. A missing file yields an empty list.
func (r *Recorder) Top(n int) ([]Entry, error) {
	f, err := os.Open(r.highScorePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open high scores: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), "|", 3)
		if len(parts) != 3 {
			continue
		}
		score, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: parts[0], Score: score, Timestamp: parts[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read high scores: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

func (r *Recorder) appendLine(path, line string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", path).Msg("result write skipped")
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		r.logger.Warn().Err(err).Str("path", path).Msg("result write failed")
	}
}
