package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/quiz-game/internal/app"
	"github.com/gokatarajesh/quiz-game/internal/config"
	"github.com/gokatarajesh/quiz-game/internal/question"
)

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer, *app.App) {
	t.Helper()
	cfg := &config.App{
		Name:       "quiz-game-test",
		Env:        "production",
		DataDir:    t.TempDir(),
		Categories: []string{"science", "history"},
		Files: config.Files{
			HighScores: "high_scores.txt",
			RunLog:     "quiz_logs.txt",
			Snapshot:   "save_progress.txt",
		},
		Game: config.Game{
			QuestionsPerSession: 10,
			ExtraTimeBonus:      10 * time.Second,
			TopScores:           5,
		},
	}
	application := app.New(cfg)
	var out bytes.Buffer
	return New(application, strings.NewReader(input), &out), &out, application
}

func TestMenuExit(t *testing.T) {
	c, out, _ := newTestCLI(t, "5\n")

	require.NoError(t, c.menu())
	assert.Contains(t, out.String(), "==== QUIZ GAME MENU ====")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMenuInvalidOptionReprompts(t *testing.T) {
	c, out, _ := newTestCLI(t, "9\n5\n")

	require.NoError(t, c.menu())
	assert.Contains(t, out.String(), "Invalid option.")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMenuEndsOnEOF(t *testing.T) {
	c, _, _ := newTestCLI(t, "")

	assert.NoError(t, c.menu())
}

func TestMenuHighScoresEmpty(t *testing.T) {
	c, out, _ := newTestCLI(t, "2\n5\n")

	require.NoError(t, c.menu())
	assert.Contains(t, out.String(), "No scores yet.")
}

func TestMenuResumeWithoutSave(t *testing.T) {
	c, out, _ := newTestCLI(t, "3\n5\n")

	require.NoError(t, c.menu())
	assert.Contains(t, out.String(), "No saved quiz.")
}

func TestMenuPlaysSampleQuiz(t *testing.T) {
	// start quiz as ada, category 1, easy; the synthesized sample category
	// has one easy question whose answer is A
	c, out, _ := newTestCLI(t, "1\nada\n1\n1\nA\n5\n")

	require.NoError(t, c.menu())
	assert.Contains(t, out.String(), "Question 1 of 1")
	assert.Contains(t, out.String(), "Correct!")
	assert.Contains(t, out.String(), "Final Score: 1")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestMenuAddQuestion(t *testing.T) {
	input := strings.Join([]string{
		"4",       // add question
		"2",       // history
		"H",       // difficulty
		"Added?",  // text
		"one",     // option A
		"two",     // option B
		"three",   // option C
		"four",    // option D
		"c",       // correct letter, normalized
		"5",       // exit
	}, "\n") + "\n"
	c, out, application := newTestCLI(t, input)

	require.NoError(t, c.menu())
	assert.Contains(t, out.String(), "Question added to history.txt")

	qs, err := application.Store.Load("history")
	require.NoError(t, err)
	last := qs[len(qs)-1]
	assert.Equal(t, "Added?", last.Text)
	assert.Equal(t, question.DifficultyHard, last.Difficulty)
	assert.Equal(t, byte('C'), last.Correct)
	assert.Equal(t, [4]string{"one", "two", "three", "four"}, last.Options)
}

func TestMenuAddQuestionInvalidCategory(t *testing.T) {
	c, out, _ := newTestCLI(t, "4\n9\n5\n")

	require.NoError(t, c.menu())
	assert.Contains(t, out.String(), "Invalid.")
}

func TestScoresSubcommand(t *testing.T) {
	c, out, _ := newTestCLI(t, "")

	cmd := c.Root()
	cmd.SetArgs([]string{"scores"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "No scores yet.")
}
