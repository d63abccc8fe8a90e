package question

// Difficulty selects the penalty, time limit and eligible questions for a session.
type Difficulty byte

const (
	DifficultyEasy   Difficulty = 'E'
	DifficultyMedium Difficulty = 'M'
	DifficultyHard   Difficulty = 'H'
)

// ParseDifficulty maps a difficulty letter (case-insensitive) to a Difficulty.
// Unknown letters fall back to Easy, matching the file format's default.
func ParseDifficulty(letter byte) Difficulty {
	switch upper(letter) {
	case 'M':
		return DifficultyMedium
	case 'H':
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Easy"
	}
}

// Letter returns the single-letter form used in category and snapshot files.
func (d Difficulty) Letter() string {
	return string(byte(d))
}

// Question is one multiple-choice record parsed from a category file.
// Immutable once parsed.
type Question struct {
	Difficulty Difficulty
	Text       string
	Options    [4]string // labeled A-D in order
	Correct    byte      // 'A'..'D'
}

// Option returns the option text for a label 'A'..'D', or "" for anything else.
func (q Question) Option(label byte) string {
	idx := int(upper(label) - 'A')
	if idx < 0 || idx >= len(q.Options) {
		return ""
	}
	return q.Options[idx]
}

// valid reports whether a parsed record satisfies the invariant: question text
// and all four options non-empty, correct label in range.
func (q Question) valid() bool {
	if q.Text == "" {
		return false
	}
	for _, opt := range q.Options {
		if opt == "" {
			return false
		}
	}
	return q.Correct >= 'A' && q.Correct <= 'D'
}

// Filter returns the questions matching the given difficulty, preserving order.
func Filter(qs []Question, diff Difficulty) []Question {
	var out []Question
	for _, q := range qs {
		if q.Difficulty == diff {
			out = append(out, q)
		}
	}
	return out
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
