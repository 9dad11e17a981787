package root

import (
	"context"

	"github.com/jubams/ramadan-tracker/internal/config"
	"github.com/jubams/ramadan-tracker/internal/engine"
	"github.com/jubams/ramadan-tracker/internal/i18n"
	"github.com/jubams/ramadan-tracker/internal/storage"
)

func openTracker(ctx context.Context) (*engine.Tracker, i18n.Language, func(), error) {
	cfg := config.Load()
	lang := i18n.ParseLanguage(cfg.Language)

	period, err := cfg.Period()
	if err != nil {
		return nil, lang, nil, err
	}

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, lang, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, lang, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	tracker, err := engine.NewTracker(ctx, storage.NewSQLiteStore(db), period)
	if err != nil {
		cleanup()
		return nil, lang, nil, err
	}
	return tracker, lang, cleanup, nil
}
