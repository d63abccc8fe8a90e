package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-game/internal/question"
	"github.com/gokatarajesh/quiz-game/internal/scores"
	"github.com/gokatarajesh/quiz-game/internal/session/scoring"
)

// RunnerOptions tunes gameplay. Zero values fall back to defaults.
type RunnerOptions struct {
	QuestionsPerSession int           // default: 10
	ExtraTimeBonus      time.Duration // default: 10s
	Clock               func() time.Time
}

// Runner drives a quiz session: ask, score, persist after every step,
// finalize. Prose goes to out; answers are read line by line from in. The
// time limit is checked by sampling the clock around the blocking read, so a
// limit only trips after the read returns.
type Runner struct {
	store     *question.FileStore
	snapshots *SnapshotStore
	recorder  *scores.Recorder
	engine    *scoring.Engine

	in  *bufio.Reader
	out io.Writer
	now func() time.Time

	maxQuestions int
	extraTime    time.Duration
	logger       zerolog.Logger
}

// NewRunner wires a session runner.
func NewRunner(
	store *question.FileStore,
	snapshots *SnapshotStore,
	recorder *scores.Recorder,
	engine *scoring.Engine,
	in io.Reader,
	out io.Writer,
	opts RunnerOptions,
	logger zerolog.Logger,
) *Runner {
	if opts.QuestionsPerSession <= 0 {
		opts.QuestionsPerSession = 10
	}
	if opts.ExtraTimeBonus <= 0 {
		opts.ExtraTimeBonus = 10 * time.Second
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Runner{
		store:        store,
		snapshots:    snapshots,
		recorder:     recorder,
		engine:       engine,
		in:           br,
		out:          out,
		now:          opts.Clock,
		maxQuestions: opts.QuestionsPerSession,
		extraTime:    opts.ExtraTimeBonus,
		logger:       logger,
	}
}

// Start begins a new session. The seed is taken from the clock and persisted
// immediately, before the first question, so even an instant interruption is
// recoverable.
func (r *Runner) Start(player, category string, diff question.Difficulty) error {
	pool, err := r.store.Load(category)
	if err != nil {
		return err
	}

	picked := question.Filter(pool, diff)
	if len(picked) == 0 {
		return fmt.Errorf("%s %s: %w", category, diff, question.ErrNoQuestions)
	}

	st := State{
		Player:     player,
		Category:   category,
		Difficulty: diff,
		Seed:       r.now().Unix(),
	}
	r.snapshots.Save(st)

	return r.play(st, picked)
}

// Resume loads the snapshot, re-derives the original play order from the
// saved seed and continues from the saved index.
func (r *Runner) Resume() error {
	st, err := r.snapshots.Load()
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Resuming quiz for %s in %s, difficulty %s\n", st.Player, st.Category, st.Difficulty)

	pool, err := r.store.Load(st.Category)
	if err != nil {
		return err
	}

	picked := question.Filter(pool, st.Difficulty)
	if len(picked) == 0 {
		return fmt.Errorf("%s %s: %w", st.Category, st.Difficulty, question.ErrNoQuestions)
	}

	return r.play(st, picked)
}

// play runs the question loop over the shuffled, difficulty-filtered pool.
func (r *Runner) play(st State, picked []question.Question) error {
	shuffled := Shuffle(picked, st.Seed)
	total := len(shuffled)
	if total > r.maxQuestions {
		total = r.maxQuestions
	}
	playList := make([]question.Question, total)
	copy(playList, shuffled)

	logger := r.logger.With().
		Str("session_id", uuid.NewString()).
		Str("player", st.Player).
		Str("category", st.Category).
		Str("difficulty", st.Difficulty.String()).
		Logger()
	logger.Info().Int("questions", len(playList)).Int("index", st.Index).Msg("session running")

	streak := 0
	for st.Index < len(playList) {
		fmt.Fprintf(r.out, "\nQuestion %d of %d\n", st.Index+1, len(playList))

		outcome := r.ask(playList[st.Index], &st.Lifelines)
		delta, newStreak := r.engine.Resolve(outcome, st.Difficulty, streak)
		st.Score += delta
		streak = newStreak

		switch outcome {
		case scoring.OutcomeCorrect:
			st.Correct++
			if bonus := r.engine.StreakBonus(streak); bonus > 0 {
				fmt.Fprintf(r.out, "Streak +%d!\n", bonus)
			}
			st.Index++
		case scoring.OutcomeWrong, scoring.OutcomeTimeout:
			st.Wrong++
			st.Index++
		case scoring.OutcomeReplace:
			// the sequence is spliced in place; the index stays put and is
			// re-evaluated against the question that slides into it
			playList = spliceToEnd(playList, st.Index)
		default:
			st.Index++
		}

		r.snapshots.Save(st)
	}

	fmt.Fprintf(r.out, "\nFinal Score: %d\n", st.Score)
	fmt.Fprintf(r.out, "Correct: %d  Wrong: %d\n", st.Correct, st.Wrong)

	r.recorder.RecordHighScore(st.Player, st.Score)
	r.recorder.RecordRun(st.Player, st.Category, st.Difficulty, st.Score, st.Correct, st.Wrong)
	r.snapshots.Clear()

	logger.Info().Int("score", st.Score).Int("correct", st.Correct).Int("wrong", st.Wrong).Msg("session completed")
	fmt.Fprintln(r.out, "Quiz completed.")
	return nil
}

// ask presents one question and resolves it to an outcome. Unused lifeline
// digits trigger their effect; a used lifeline's digit falls through to
// answer evaluation like any other input.
func (r *Runner) ask(q question.Question, life *Lifelines) scoring.Outcome {
	fmt.Fprintf(r.out, "Q: %s\n", q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(r.out, "%c) %s\n", 'A'+i, opt)
	}
	r.printLifelines(life)

	limit := r.engine.TimeLimit(q.Difficulty)

	fmt.Fprint(r.out, "Enter answer letter (A-D) or lifeline number: ")
	start := r.now()
	input := r.readLine()
	elapsed := r.now().Sub(start)

	if len(input) > 0 && input[0] >= '0' && input[0] <= '9' {
		switch input[0] {
		case '1':
			if life.UseFiftyFifty() {
				r.printFiftyFifty(q)
				fmt.Fprint(r.out, "Enter answer (A-D): ")
				input = r.readLine()
				elapsed = 0
			}
		case '2':
			if life.UseSkip() {
				fmt.Fprintln(r.out, "Skipped.")
				return scoring.OutcomeSkip
			}
		case '3':
			if life.UseReplace() {
				fmt.Fprintln(r.out, "Replace used. This question will appear later.")
				return scoring.OutcomeReplace
			}
		case '4':
			if life.UseExtraTime() {
				limit += r.extraTime
				fmt.Fprint(r.out, "Extra time granted. Enter answer: ")
				input = r.readLine()
				elapsed = 0
			}
		}
	}

	if elapsed > limit {
		fmt.Fprintln(r.out, "Time up!")
		return scoring.OutcomeTimeout
	}

	if input == "" {
		fmt.Fprintln(r.out, "No answer entered.")
		return scoring.OutcomePass
	}

	ans := input[0]
	if ans >= 'a' && ans <= 'z' {
		ans -= 'a' - 'A'
	}
	switch {
	case ans == q.Correct:
		fmt.Fprintln(r.out, "Correct!")
		return scoring.OutcomeCorrect
	case ans >= 'A' && ans <= 'D':
		fmt.Fprintf(r.out, "Wrong. Correct was %c\n", q.Correct)
		return scoring.OutcomeWrong
	default:
		fmt.Fprintln(r.out, "Invalid input.")
		return scoring.OutcomePass
	}
}

func (r *Runner) printLifelines(life *Lifelines) {
	fmt.Fprint(r.out, "Lifelines: ")
	if !life.FiftyFifty {
		fmt.Fprint(r.out, "[1]50/50 ")
	}
	if !life.Skip {
		fmt.Fprint(r.out, "[2]Skip ")
	}
	if !life.Replace {
		fmt.Fprint(r.out, "[3]Replace ")
	}
	if !life.ExtraTime {
		fmt.Fprint(r.out, "[4]ExtraTime ")
	}
	fmt.Fprintln(r.out)
}

// printFiftyFifty reveals the correct option and the first incorrect option
// in A-D label order. The tie-break is deterministic, not random.
func (r *Runner) printFiftyFifty(q question.Question) {
	fmt.Fprintln(r.out, "50/50 used. Showing correct option and one wrong option:")
	fmt.Fprintf(r.out, "%c) %s\n", q.Correct, q.Option(q.Correct))
	for label := byte('A'); label <= 'D'; label++ {
		if label != q.Correct {
			fmt.Fprintf(r.out, "%c) %s\n", label, q.Option(label))
			break
		}
	}
}

func (r *Runner) readLine() string {
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// spliceToEnd removes the question at index i and reinserts it at the tail.
// The list grows by one slot, so the moved question occupies the last two
// positions: a two-question list with the first replaced plays out as three.
func spliceToEnd(play []question.Question, i int) []question.Question {
	moved := play[i]
	out := make([]question.Question, 0, len(play)+1)
	out = append(out, play[:i]...)
	out = append(out, play[i+1:]...)
	return append(out, moved, moved)
}
