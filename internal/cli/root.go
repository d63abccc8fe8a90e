package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gokatarajesh/quiz-game/internal/app"
	"github.com/gokatarajesh/quiz-game/internal/logging"
)

// CLI binds the game's commands to a terminal input/output pair.
type CLI struct {
	app *app.App
	in  *bufio.Reader
	out io.Writer
}

// New creates a CLI over the given streams. Tests pass scripted readers.
func New(application *app.App, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		app: application,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Execute runs the CLI against stdin/stdout.
func Execute(ctx context.Context, application *app.App) error {
	return New(application, os.Stdin, os.Stdout).Root().ExecuteContext(ctx)
}

// Root builds the command tree. Running the bare binary opens the
// interactive menu; subcommands jump straight to one action.
func (c *CLI) Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quiz-game",
		Short:         "Single-player text-menu quiz game with lifelines and resumable sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.FromContext(cmd.Context())
			logger.Debug().Msg("interactive menu opened")
			return c.menu()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Start a new quiz session",
			RunE: func(cmd *cobra.Command, args []string) error {
				c.startQuiz()
				return nil
			},
		},
		&cobra.Command{
			Use:   "resume",
			Short: "Resume the saved quiz session",
			RunE: func(cmd *cobra.Command, args []string) error {
				c.resumeQuiz()
				return nil
			},
		},
		&cobra.Command{
			Use:   "scores",
			Short: "Show the top high scores",
			RunE: func(cmd *cobra.Command, args []string) error {
				c.showHighScores()
				return nil
			},
		},
		&cobra.Command{
			Use:   "add",
			Short: "Add a question to a category file",
			RunE: func(cmd *cobra.Command, args []string) error {
				c.addQuestion()
				return nil
			},
		},
	)
	return cmd
}
