package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/questline/parley/render"
)

// Option structs for subcommands that have flags
type ParseOptions struct {
	Format      string
	NoColor     bool
	HistoryPath string
}

type ReplOptions struct {
	Format      string
	NoColor     bool
	HistoryPath string
}

type BatchOptions struct {
	Format      string
	NoColor     bool
	HistoryPath string
}

type HistoryOptions struct {
	Path   string
	N      int
	Action string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("parley", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func addFormatFlag(fs *flag.FlagSet, target *string) {
	*target = render.DefaultFormat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: target}
	fs.Var(formatFlag, "output", "Output format: human, json or contract")
	fs.Var(formatFlag, "o", "alias for -output")
}

func parseParseArgs(args []string, ui UI) (ParseOptions, string, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ParseOptions
	addFormatFlag(fs, &opts.Format)
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")
	fs.StringVar(&opts.HistoryPath, "history-path", os.Getenv("PARLEY_HISTORY_PATH"), "Directory or SQLite file recording parsed commands")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s parse [options] <command text>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse one text-adventure command into a structured intent record.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("parse command needs the command text argument")
	}

	// allow unquoted trailing words
	text := strings.Join(fs.Args(), " ")
	return opts, text, nil
}

func parseTokensArgs(args []string, ui UI) (string, error) {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s tokens <command text>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show the annotated token stream for a command.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", errors.New("tokens command needs the command text argument")
	}

	return strings.Join(fs.Args(), " "), nil
}

func parseReplArgs(args []string, ui UI) (ReplOptions, error) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ReplOptions
	addFormatFlag(fs, &opts.Format)
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")
	fs.StringVar(&opts.HistoryPath, "history-path", os.Getenv("PARLEY_HISTORY_PATH"), "Directory or SQLite file recording parsed commands")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s repl [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive mode. Resolver state resets per command.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	return opts, nil
}

func parseBatchArgs(args []string, ui UI) (BatchOptions, string, error) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts BatchOptions
	addFormatFlag(fs, &opts.Format)
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")
	fs.StringVar(&opts.HistoryPath, "history-path", os.Getenv("PARLEY_HISTORY_PATH"), "Directory or SQLite file recording parsed commands")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s batch [options] <file>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse a file of commands, one per line, and show statistics.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("batch command needs exactly one argument: <file>")
	}

	return opts, fs.Arg(0), nil
}

func parseHistoryArgs(args []string, ui UI) (HistoryOptions, error) {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts HistoryOptions
	fs.StringVar(&opts.Path, "history-path", os.Getenv("PARLEY_HISTORY_PATH"), "Directory or SQLite file recording parsed commands")
	fs.StringVar(&opts.Path, "p", os.Getenv("PARLEY_HISTORY_PATH"), "alias for -history-path")
	fs.IntVar(&opts.N, "n", 20, "Number of records to show (0 for all)")
	fs.StringVar(&opts.Action, "action", "", "Show only commands with this primary action")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s history [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List previously parsed commands, newest first.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.Path == "" {
		return opts, errors.New("History path must be specified via -p or PARLEY_HISTORY_PATH")
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}

	return nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Text-adventure command parser\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  parse     Parse one command into a structured intent record.\n")
		_, _ = fmt.Fprintf(output, "  tokens    Show the annotated token stream for a command.\n")
		_, _ = fmt.Fprintf(output, "  repl      Enter interactive mode.\n")
		_, _ = fmt.Fprintf(output, "  batch     Parse a file of commands and show statistics.\n")
		_, _ = fmt.Fprintf(output, "  history   List previously parsed commands.\n")
		_, _ = fmt.Fprintf(output, "  bash      Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version   Show version.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
