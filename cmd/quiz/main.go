// Command quiz is a terminal gender quiz over the local lexicon. Answer
// each word with m or f; XP, level, recent searches and favorites persist
// in a JSON state file between runs.
//
// Flags:
//
//	-state     path to the state file (default: <user config dir>/legenre/quiz.json)
//	-fallback  resolve "?word" searches missing from the lexicon via Wiktionary
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/heartmarshall/legenre/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/legenre/internal/app"
	"github.com/heartmarshall/legenre/internal/config"
	"github.com/heartmarshall/legenre/internal/lexicon"
	"github.com/heartmarshall/legenre/internal/quiz"
	"github.com/heartmarshall/legenre/internal/service/lookup"
)

func main() {
	stateFlag := flag.String("state", defaultStatePath(), "path to the quiz state file")
	fallbackFlag := flag.Bool("fallback", false, "resolve unknown searches via Wiktionary")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	index, _, err := lexicon.LoadFile(ctx, cfg.Lexicon.Path)
	if err != nil {
		logger.Error("load lexicon", slog.String("path", cfg.Lexicon.Path), slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := lookup.NewService(logger, index)
	if *fallbackFlag && !cfg.Fallback.Disabled {
		svc.SetFallback(wiktionary.NewProvider(cfg.Fallback, logger))
	}

	state, err := loadState(*stateFlag, logger)
	if err != nil {
		logger.Error("load state", slog.String("path", *stateFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	g := newGame(svc, state, os.Stdin, os.Stdout)
	runErr := g.run(ctx)

	if err := quiz.SaveState(*stateFlag, g.state()); err != nil {
		logger.Error("save state", slog.String("path", *stateFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}
	if runErr != nil {
		logger.Error("quiz", slog.String("error", runErr.Error()))
		os.Exit(1)
	}
}

// loadState reads the state file. A corrupt file is moved aside to a .bak
// copy and a fresh state is returned; any other read error is fatal so the
// file is never overwritten.
func loadState(path string, logger *slog.Logger) (quiz.State, error) {
	st, err := quiz.LoadState(path)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, quiz.ErrCorruptState) {
		return st, err
	}

	backup, bakErr := quiz.BackupState(path)
	if bakErr != nil {
		return st, fmt.Errorf("%w (%w)", err, bakErr)
	}
	logger.Warn("state file unreadable, starting fresh",
		slog.String("error", err.Error()),
		slog.String("backup", backup),
	)
	return st, nil
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "quiz.json"
	}
	return filepath.Join(dir, "legenre", "quiz.json")
}
