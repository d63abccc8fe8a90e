package scoring

import (
	"time"

	"github.com/gokatarajesh/quiz-game/internal/question"
)

// Outcome classifies how a single question slot was resolved.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeWrong
	OutcomeTimeout
	OutcomeSkip
	OutcomeReplace
	OutcomePass // empty or unrecognized input, advances without penalty
)

// Config holds configurable scoring constants (defaults match requirements).
type Config struct {
	CorrectPoints int // default: 1

	PenaltyEasy   int // default: 2
	PenaltyMedium int // default: 3
	PenaltyHard   int // default: 5

	TimeLimitEasy   time.Duration // default: 20s
	TimeLimitMedium time.Duration // default: 25s
	TimeLimitHard   time.Duration // default: 35s

	// Streak bonuses trigger once, at the exact streak value.
	ShortStreak      int // default: 3
	ShortStreakBonus int // default: 5
	LongStreak       int // default: 5
	LongStreakBonus  int // default: 15
}

// DefaultConfig returns the gameplay defaults.
func DefaultConfig() Config {
	return Config{
		CorrectPoints:    1,
		PenaltyEasy:      2,
		PenaltyMedium:    3,
		PenaltyHard:      5,
		TimeLimitEasy:    20 * time.Second,
		TimeLimitMedium:  25 * time.Second,
		TimeLimitHard:    35 * time.Second,
		ShortStreak:      3,
		ShortStreakBonus: 5,
		LongStreak:       5,
		LongStreakBonus:  15,
	}
}

// Engine computes per-answer score deltas with configurable constants.
type Engine struct {
	config Config
}

// NewEngine creates a scoring engine with the provided config.
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// Penalty returns the wrong-answer deduction for a difficulty.
func (e *Engine) Penalty(diff question.Difficulty) int {
	switch diff {
	case question.DifficultyEasy:
		return e.config.PenaltyEasy
	case question.DifficultyMedium:
		return e.config.PenaltyMedium
	default:
		return e.config.PenaltyHard
	}
}

// TimeLimit returns the answering window for a difficulty.
func (e *Engine) TimeLimit(diff question.Difficulty) time.Duration {
	switch diff {
	case question.DifficultyEasy:
		return e.config.TimeLimitEasy
	case question.DifficultyMedium:
		return e.config.TimeLimitMedium
	default:
		return e.config.TimeLimitHard
	}
}

// Resolve computes the score delta for one resolved question and the streak
// that results from it.
// - Correct: +CorrectPoints, streak advances; hitting the short or long streak
//   value exactly adds its one-time bonus.
// - Wrong or timeout: -Penalty(diff), streak resets.
// - Skip, replace, pass: no delta, streak preserved.
func (e *Engine) Resolve(outcome Outcome, diff question.Difficulty, streak int) (delta, newStreak int) {
	switch outcome {
	case OutcomeCorrect:
		newStreak = streak + 1
		delta = e.config.CorrectPoints
		if newStreak == e.config.ShortStreak {
			delta += e.config.ShortStreakBonus
		}
		if newStreak == e.config.LongStreak {
			delta += e.config.LongStreakBonus
		}
		return delta, newStreak
	case OutcomeWrong, OutcomeTimeout:
		return -e.Penalty(diff), 0
	default:
		return 0, streak
	}
}

// StreakBonus returns the one-time bonus granted when the streak hits exactly
// the given value, or zero.
func (e *Engine) StreakBonus(streak int) int {
	switch streak {
	case e.config.ShortStreak:
		return e.config.ShortStreakBonus
	case e.config.LongStreak:
		return e.config.LongStreakBonus
	default:
		return 0
	}
}
