package session

import (
	"math/rand"

	"github.com/gokatarajesh/quiz-game/internal/question"
)

// Shuffle returns a reordered copy of qs driven by a seeded generator.
// The same seed and input order always produce the same output order; the
// seed is persisted in the snapshot so resume can re-derive the play order.
func Shuffle(qs []question.Question, seed int64) []question.Question {
	out := make([]question.Question, len(qs))
	copy(out, qs)

	rng := rand.New(rand.NewSource(seed))
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
