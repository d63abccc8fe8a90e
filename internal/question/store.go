package question

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNoQuestions is returned when a category file yields zero usable records.
var ErrNoQuestions = errors.New("no questions found")

// FileStore loads and appends questions in the line-oriented category format.
// One file per category under the data directory, named <category>.txt.
type FileStore struct {
	dataDir    string
	categories []string
	logger     zerolog.Logger
}

// NewFileStore creates a store rooted at dataDir. categories is the full list
// of known categories; it drives sample-file synthesis.
func NewFileStore(dataDir string, categories []string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		dataDir:    dataDir,
		categories: categories,
		logger:     logger,
	}
}

// Load parses the category's file into a question sequence. If the file is
// missing it first synthesizes sample content for every known category, so
// the game is playable with zero setup. A parse yielding no usable records
// returns ErrNoQuestions.
func (s *FileStore) Load(category string) ([]Question, error) {
	path := s.path(category)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		s.EnsureSampleFiles()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open category %s: %w", category, err)
	}
	defer f.Close()

	qs := parse(f, s.logger)
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}

	s.logger.Debug().Str("category", category).Int("count", len(qs)).Msg("questions loaded")
	return qs, nil
}

// Append writes a well-formed record to the end of the category's file.
func (s *FileStore) Append(category string, q Question) error {
	f, err := os.OpenFile(s.path(category), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open category %s for append: %w", category, err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatRecord(q)); err != nil {
		return fmt.Errorf("append question: %w", err)
	}
	return nil
}

// EnsureSampleFiles writes default content (one Easy, one Medium record) for
// every known category whose file is absent.
func (s *FileStore) EnsureSampleFiles() {
	for _, cat := range s.categories {
		path := s.path(cat)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(sampleContent(cat)), 0o644); err != nil {
			s.logger.Warn().Err(err).Str("category", cat).Msg("sample file creation failed")
		}
	}
}

func (s *FileStore) path(category string) string {
	return filepath.Join(s.dataDir, category+".txt")
}

// parse implements the line-oriented record grammar. A `Q:` line opens a
// record, option/answer/difficulty lines fill it while open, and a bare `---`
// closes it. Incomplete or invalid records are dropped, not surfaced.
func parse(r io.Reader, logger zerolog.Logger) []Question {
	var (
		qs      []Question
		current Question
		reading bool
		dropped int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Q:"):
			reading = true
			current = Question{
				Difficulty: DifficultyEasy,
				Text:       strings.TrimSpace(line[2:]),
				Correct:    'A',
			}
		case reading && len(line) >= 2 && line[1] == ')' && upper(line[0]) >= 'A' && upper(line[0]) <= 'D':
			current.Options[upper(line[0])-'A'] = strings.TrimSpace(line[2:])
		case reading && strings.HasPrefix(line, "ANSWER:"):
			if v := strings.TrimSpace(line[len("ANSWER:"):]); v != "" {
				current.Correct = upper(v[0])
			}
		case reading && strings.HasPrefix(line, "DIFF:"):
			if v := strings.TrimSpace(line[len("DIFF:"):]); v != "" {
				current.Difficulty = ParseDifficulty(v[0])
			}
		case line == "---":
			if reading && current.valid() {
				qs = append(qs, current)
			} else if reading {
				dropped++
			}
			reading = false
		}
	}

	// a record with no closing separator at EOF is incomplete
	if reading {
		dropped++
	}
	if dropped > 0 {
		logger.Debug().Int("dropped", dropped).Msg("malformed question records skipped")
	}
	return qs
}

func formatRecord(q Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Q: %s\n", q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "%c) %s\n", 'A'+i, opt)
	}
	fmt.Fprintf(&b, "ANSWER: %c\n", q.Correct)
	fmt.Fprintf(&b, "DIFF: %s\n", q.Difficulty.Letter())
	b.WriteString("---\n")
	return b.String()
}

func sampleContent(category string) string {
	var b strings.Builder
	b.WriteString(formatRecord(Question{
		Difficulty: DifficultyEasy,
		Text:       fmt.Sprintf("Sample easy question in %s?", category),
		Options:    [4]string{"Option A", "Option B", "Option C", "Option D"},
		Correct:    'A',
	}))
	b.WriteString(formatRecord(Question{
		Difficulty: DifficultyMedium,
		Text:       fmt.Sprintf("Sample medium question in %s?", category),
		Options:    [4]string{"Opt A", "Opt B", "Opt C", "Opt D"},
		Correct:    'B',
	}))
	return b.String()
}
