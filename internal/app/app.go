package app

import (
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/quiz-game/internal/config"
	"github.com/gokatarajesh/quiz-game/internal/logging"
	"github.com/gokatarajesh/quiz-game/internal/question"
	"github.com/gokatarajesh/quiz-game/internal/scores"
	"github.com/gokatarajesh/quiz-game/internal/session"
	"github.com/gokatarajesh/quiz-game/internal/session/scoring"
)

// App aggregates the game's shared collaborators: question store, save slot,
// result recorder and scoring engine.
type App struct {
	Config    *config.App
	Logger    zerolog.Logger
	Store     *question.FileStore
	Snapshots *session.SnapshotStore
	Recorder  *scores.Recorder
	Engine    *scoring.Engine
}

// New bootstraps the logger and file-backed collaborators from config.
func New(cfg *config.App) *App {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Debug().Str("data_dir", cfg.DataDir).Msg("application bootstrap")

	return &App{
		Config:    cfg,
		Logger:    logger,
		Store:     question.NewFileStore(cfg.DataDir, cfg.Categories, logger),
		Snapshots: session.NewSnapshotStore(filepath.Join(cfg.DataDir, cfg.Files.Snapshot), logger),
		Recorder: scores.NewRecorder(
			filepath.Join(cfg.DataDir, cfg.Files.HighScores),
			filepath.Join(cfg.DataDir, cfg.Files.RunLog),
			logger,
		),
		Engine: scoring.NewEngine(scoring.DefaultConfig()),
	}
}

// NewRunner builds a session runner bound to the given terminal streams.
func (a *App) NewRunner(in io.Reader, out io.Writer) *session.Runner {
	return session.NewRunner(a.Store, a.Snapshots, a.Recorder, a.Engine, in, out, session.RunnerOptions{
		QuestionsPerSession: a.Config.Game.QuestionsPerSession,
		ExtraTimeBonus:      a.Config.Game.ExtraTimeBonus,
	}, a.Logger)
}
