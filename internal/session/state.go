package session

import "github.com/gokatarajesh/quiz-game/internal/question"

// Lifelines tracks the four one-shot aids. Each flag flips to true on first
// use and never resets within a session.
type Lifelines struct {
	FiftyFifty bool
	Skip       bool
	Replace    bool
	ExtraTime  bool
}

// UseFiftyFifty consumes the 50/50 lifeline. Returns false if already used.
func (l *Lifelines) UseFiftyFifty() bool {
	if l.FiftyFifty {
		return false
	}
	l.FiftyFifty = true
	return true
}

// UseSkip consumes the skip lifeline. Returns false if already used.
func (l *Lifelines) UseSkip() bool {
	if l.Skip {
		return false
	}
	l.Skip = true
	return true
}

// UseReplace consumes the replace lifeline. Returns false if already used.
func (l *Lifelines) UseReplace() bool {
	if l.Replace {
		return false
	}
	l.Replace = true
	return true
}

// UseExtraTime consumes the extra-time lifeline. Returns false if already used.
func (l *Lifelines) UseExtraTime() bool {
	if l.ExtraTime {
		return false
	}
	l.ExtraTime = true
	return true
}

// State is the persisted mid-session snapshot. It is overwritten after every
// resolved question and deleted once the session completes, making it the
// sole crash-recovery channel.
type State struct {
	Player     string
	Category   string
	Difficulty question.Difficulty
	Seed       int64
	Index      int // next question to ask, 0-based
	Score      int // signed, may go negative
	Correct    int
	Wrong      int
	Lifelines  Lifelines
}
