// Command lexicon-build converts a Lexique TSV file into the compact
// words.json gender map served to static clients. It applies the same
// filtering and deduplication as the server index.
//
// Flags:
//
//	-in   path to the Lexique TSV (.tsv or .tsv.gz); defaults to lexicon.path
//	-out  output file (default: words.json; "-" for stdout)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/heartmarshall/legenre/internal/app"
	"github.com/heartmarshall/legenre/internal/config"
	"github.com/heartmarshall/legenre/internal/lexicon"
)

func main() {
	inFlag := flag.String("in", "", "path to the Lexique TSV (default: lexicon.path from config)")
	outFlag := flag.String("out", "words.json", `output file ("-" for stdout)`)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	in := *inFlag
	if in == "" {
		in = cfg.Lexicon.Path
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	index, stats, err := lexicon.LoadFile(ctx, in)
	if err != nil {
		logger.Error("build lexicon", slog.String("path", in), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeOutput(*outFlag, index); err != nil {
		logger.Error("write gender map", slog.String("path", *outFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("gender map written",
		slog.String("in", in),
		slog.String("out", *outFlag),
		slog.Int("words", stats.UniqueWords),
		slog.Int("entries", stats.Indexed),
		slog.Int("duplicates", stats.Duplicates),
		slog.Duration("duration", time.Since(start)),
	)
}

func writeOutput(path string, index *lexicon.Index) error {
	if path == "-" {
		w := bufio.NewWriter(os.Stdout)
		if err := lexicon.WriteGenderMap(w, index); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := lexicon.WriteGenderMap(w, index); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
