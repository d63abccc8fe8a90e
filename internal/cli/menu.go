package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gokatarajesh/quiz-game/internal/question"
	"github.com/gokatarajesh/quiz-game/internal/session"
)

// menu runs the interactive main loop until the player exits.
func (c *CLI) menu() error {
	c.app.Store.EnsureSampleFiles()

	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "==== QUIZ GAME MENU ====")
		fmt.Fprintln(c.out, "1) Start Quiz")
		fmt.Fprintln(c.out, "2) View High Scores")
		fmt.Fprintln(c.out, "3) Resume Saved Quiz")
		fmt.Fprintln(c.out, "4) Add Question")
		fmt.Fprintln(c.out, "5) Exit")
		fmt.Fprint(c.out, "Enter choice: ")

		line, eof := c.readLine()
		if eof {
			return nil
		}

		switch line {
		case "1":
			c.startQuiz()
		case "2":
			c.showHighScores()
		case "3":
			c.resumeQuiz()
		case "4":
			c.addQuestion()
		case "5":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

func (c *CLI) startQuiz() {
	fmt.Fprint(c.out, "Enter your name: ")
	name, eof := c.readLine()
	if eof {
		return
	}

	category, ok := c.pickCategory()
	if !ok {
		fmt.Fprintln(c.out, "Invalid category.")
		return
	}
	diff := c.pickDifficulty()

	runner := c.app.NewRunner(c.in, c.out)
	if err := runner.Start(name, category, diff); err != nil {
		c.reportSessionError(err)
	}
}

func (c *CLI) resumeQuiz() {
	runner := c.app.NewRunner(c.in, c.out)
	if err := runner.Resume(); err != nil {
		c.reportSessionError(err)
	}
}

func (c *CLI) showHighScores() {
	entries, err := c.app.Recorder.Top(c.app.Config.Game.TopScores)
	if err != nil {
		fmt.Fprintln(c.out, "Cannot open high scores.")
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No scores yet.")
		return
	}
	for i, e := range entries {
		fmt.Fprintf(c.out, "%d) %s - %d (%s)\n", i+1, e.Name, e.Score, e.Timestamp)
	}
}

func (c *CLI) addQuestion() {
	fmt.Fprintln(c.out, "Select category to add question:")
	category, ok := c.pickCategory()
	if !ok {
		fmt.Fprintln(c.out, "Invalid.")
		return
	}

	fmt.Fprint(c.out, "Enter difficulty (E/M/H): ")
	diffLine, _ := c.readLine()
	diff := question.DifficultyEasy
	if diffLine != "" {
		diff = question.ParseDifficulty(diffLine[0])
	}

	fmt.Fprintln(c.out, "Enter question text:")
	text, _ := c.readLine()

	var q question.Question
	q.Difficulty = diff
	q.Text = text
	for i := range q.Options {
		fmt.Fprintf(c.out, "Option %c: ", 'A'+i)
		q.Options[i], _ = c.readLine()
	}

	fmt.Fprint(c.out, "Correct option (A-D): ")
	correctLine, _ := c.readLine()
	q.Correct = 'A'
	if correctLine != "" {
		letter := strings.ToUpper(correctLine)[0]
		if letter >= 'A' && letter <= 'D' {
			q.Correct = letter
		}
	}

	if err := c.app.Store.Append(category, q); err != nil {
		fmt.Fprintln(c.out, "Cannot open file to add question.")
		return
	}
	fmt.Fprintf(c.out, "Question added to %s.txt\n", category)
}

// pickCategory shows the numbered category list and reads a 1-based choice.
func (c *CLI) pickCategory() (string, bool) {
	categories := c.app.Config.Categories
	fmt.Fprintln(c.out, "Categories:")
	for i, cat := range categories {
		fmt.Fprintf(c.out, "%d) %s\n", i+1, cat)
	}
	fmt.Fprint(c.out, "Enter choice: ")

	line, _ := c.readLine()
	choice, err := strconv.Atoi(line)
	if err != nil || choice < 1 || choice > len(categories) {
		return "", false
	}
	return categories[choice-1], true
}

// pickDifficulty reads a 1-3 choice. Invalid input defaults to Easy.
func (c *CLI) pickDifficulty() question.Difficulty {
	fmt.Fprintln(c.out, "Difficulty:")
	fmt.Fprintln(c.out, "1) Easy")
	fmt.Fprintln(c.out, "2) Medium")
	fmt.Fprintln(c.out, "3) Hard")
	fmt.Fprint(c.out, "Enter: ")

	line, _ := c.readLine()
	switch line {
	case "2":
		return question.DifficultyMedium
	case "3":
		return question.DifficultyHard
	default:
		return question.DifficultyEasy
	}
}

func (c *CLI) reportSessionError(err error) {
	switch {
	case errors.Is(err, question.ErrNoQuestions):
		fmt.Fprintln(c.out, "No questions found for this selection.")
	case errors.Is(err, session.ErrNoSavedSession):
		fmt.Fprintln(c.out, "No saved quiz.")
	default:
		fmt.Fprintf(c.out, "Quiz failed: %v\n", err)
		c.app.Logger.Error().Err(err).Msg("session error")
	}
}

// readLine reads one trimmed line; the bool reports end of input.
func (c *CLI) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", true
	}
	return strings.TrimSpace(line), false
}
