package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds runtime configuration for the quiz game.
type App struct {
	Name string `env:"APP_NAME" envDefault:"quiz-game"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	// DataDir is where category files and all persistence files live.
	DataDir    string   `env:"QUIZ_DATA_DIR" envDefault:"."`
	Categories []string `env:"QUIZ_CATEGORIES" envSeparator:"," envDefault:"science,computer,sports,history,iq"`

	Files Files
	Game  Game
}

// Files names the flat persistence files, relative to DataDir.
type Files struct {
	HighScores string `env:"QUIZ_HIGHSCORE_FILE" envDefault:"high_scores.txt"`
	RunLog     string `env:"QUIZ_LOG_FILE" envDefault:"quiz_logs.txt"`
	Snapshot   string `env:"QUIZ_SAVE_FILE" envDefault:"save_progress.txt"`
}

// Game groups gameplay defaults.
type Game struct {
	QuestionsPerSession int           `env:"QUIZ_QUESTIONS_PER_SESSION" envDefault:"10"`
	ExtraTimeBonus      time.Duration `env:"QUIZ_EXTRA_TIME_BONUS" envDefault:"10s"`
	TopScores           int           `env:"QUIZ_TOP_SCORES" envDefault:"5"`
}

// Load parses environment variables into App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
