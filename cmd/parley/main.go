package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/questline/parley/annotate"
	"github.com/questline/parley/intent"
	"github.com/questline/parley/query"
	"github.com/questline/parley/render"
	"github.com/questline/parley/storage"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	cmd, args, err := parseMainArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := runCommand(cmd, args, ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "parley: %v\n", err)
}

func runCommand(cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("parley", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "parse":
		opts, text, err := parseParseArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return parseCommand(opts, text, ui)

	case "tokens":
		text, err := parseTokensArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return tokensCommand(text, ui)

	case "repl":
		opts, err := parseReplArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return replCommand(opts, ui)

	case "batch":
		opts, path, err := parseBatchArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return batchCommand(opts, path, ui)

	case "history":
		opts, err := parseHistoryArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return historyCommand(opts, ui)

	case "bash":
		if err := parseBashArgs(args, ui); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return bashCommand(ui)

	case "complete":
		completeArgs, err := parseCompleteArgs(args, ui)
		if err != nil {
			return err
		}
		return completeCommand(completeArgs, ui)

	case "version":
		return versionCommand(ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

func parseCommand(opts ParseOptions, text string, ui UI) error {

	ann := annotate.New()
	pipe := intent.NewPipeline()

	stream, spans, err := ann.Annotate(text)
	if err != nil {
		return err
	}

	cmd := pipe.Parse(stream, spans)
	cmd.Text = text

	r := render.NewRenderer()
	r.Format = opts.Format
	r.HasColor = !opts.NoColor

	if err := r.Command(ui.Out, cmd); err != nil {
		return err
	}

	if opts.HistoryPath == "" {
		return nil
	}

	repo, closeRepo, err := NewHistoryRepository(opts.HistoryPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	return repo.Append(storage.Record{
		Text:      text,
		Command:   cmd,
		CreatedAt: time.Now().UTC(),
	})
}

func tokensCommand(text string, ui UI) error {

	ann := annotate.New()

	stream, spans, err := ann.Annotate(text)
	if err != nil {
		return err
	}

	for _, t := range stream {
		fmt.Fprintf(ui.Out, "%20q %15q %8s %6d %6d %10s\n", t.Text, t.Lemma, t.Pos, t.Index, t.Head, t.Dep)
	}

	for _, span := range spans {
		fmt.Fprintf(ui.Out, "🏷  %s (%s) %.2f\n", span.Text, span.Type, span.Confidence)
	}

	return nil
}

func replCommand(opts ReplOptions, ui UI) error {

	r := render.NewRenderer()
	r.Format = opts.Format
	r.HasColor = !opts.NoColor

	h := query.NewHandler(annotate.New(), intent.NewPipeline(), r)

	if opts.HistoryPath != "" {
		repo, closeRepo, err := NewHistoryRepository(opts.HistoryPath)
		if err != nil {
			return err
		}
		defer closeRepo()
		h.History = repo
	}

	return h.Run()
}

func historyCommand(opts HistoryOptions, ui UI) error {

	repo, closeRepo, err := NewHistoryRepository(opts.Path)
	if err != nil {
		return err
	}
	defer closeRepo()

	var records []storage.Record
	if opts.Action != "" {
		records, err = repo.FindByAction(opts.Action, opts.N)
	} else {
		records, err = repo.List(opts.N)
	}
	if err != nil {
		return err
	}

	for _, rec := range records {
		fmt.Fprintf(ui.Out, "🕘 %4d %-35q %s → %s\n", rec.Id, rec.Text, rec.Command.Action, rec.Command.Target)
	}

	return nil
}
