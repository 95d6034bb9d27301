// Package app wires configuration, logging, storage and the logo store into
// an editing session.
package app

import (
	"context"
	"io"
	"os"

	"github.com/riskibarqy/team-editor/internal/config"
	"github.com/riskibarqy/team-editor/internal/infrastructure/asset"
	"github.com/riskibarqy/team-editor/internal/infrastructure/repository/sqlite"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	"github.com/riskibarqy/team-editor/internal/usecase"
)

// NewLogger builds the process logger from cfg. The returned closer releases
// the log file when one is configured.
func NewLogger(cfg config.Config, stderr io.Writer) (*logging.Logger, io.Closer) {
	if cfg.LogFile == "" {
		if stderr == nil {
			stderr = os.Stderr
		}
		return logging.New(cfg.LogLevel, cfg.LogFormat, stderr), noopCloser{}
	}

	w := logging.RotatingFile(cfg.LogFile, 10)
	return logging.New(cfg.LogLevel, cfg.LogFormat, w), w
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// SQLiteOpener opens game databases through the SQLite gateway.
func SQLiteOpener(logger *logging.Logger) usecase.Opener {
	return func(ctx context.Context, path string) (usecase.Database, error) {
		db, err := sqlite.Open(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
}

// NewSession returns a session backed by SQLite files and on-disk logos.
// A nil confirmer accepts every save.
func NewSession(cfg config.Config, logger *logging.Logger, confirmer usecase.Confirmer) *usecase.Session {
	if !cfg.ConfirmSaves || confirmer == nil {
		confirmer = usecase.AlwaysConfirm
	}

	return usecase.NewSession(usecase.SessionOptions{
		Opener:    SQLiteOpener(logger),
		Logos:     asset.NewLogoStore(cfg.LogoSize, logger),
		Confirmer: confirmer,
		AssetDir:  cfg.AssetDir,
		Logger:    logger,
	})
}
