package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/questline/parley/annotate"
	"github.com/questline/parley/intent"
	"github.com/questline/parley/render"
	"github.com/questline/parley/stat"
	"github.com/questline/parley/storage"

	"github.com/gosuri/uiprogress"
)

func batchCommand(opts BatchOptions, path string, ui UI) error {

	lines, err := readLines(path)
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		return fmt.Errorf("no commands in %s", path)
	}

	ann := annotate.New()
	pipe := intent.NewPipeline()
	hdl := stat.NewHandler()

	// Start progress indicator
	uiprogress.Start()
	bar := uiprogress.AddBar(len(lines))
	bar.AppendCompleted()
	bar.PrependElapsed()
	// Append the current command to the progress bar
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		i := b.Current() - 1
		if i < 0 {
			i = 0
		}
		return lines[i]
	})

	cmds := make([]intent.Command, 0, len(lines))
	for _, line := range lines {
		stream, spans, err := ann.Annotate(line)
		if err == nil {
			cmd := pipe.Parse(stream, spans)
			cmd.Text = line
			cmds = append(cmds, cmd)
			hdl.Aggregate(cmd)
		}

		bar.Incr()
	}

	// stop rendering
	uiprogress.Stop()

	r := render.NewRenderer()
	r.Format = opts.Format
	r.HasColor = !opts.NoColor

	for _, cmd := range cmds {
		if err := r.Command(ui.Out, cmd); err != nil {
			return err
		}
		fmt.Fprintln(ui.Out)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num commands %d, verbs per command %d\n", stats.NumCommands, stats.VerbsPerCommandMean())

	if opts.HistoryPath == "" {
		return nil
	}

	repo, closeRepo, err := NewHistoryRepository(opts.HistoryPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	for _, cmd := range cmds {
		rec := storage.Record{
			Text:      cmd.Text,
			Command:   cmd,
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.Append(rec); err != nil {
			return err
		}
	}

	return nil
}

// readLines loads the command corpus, skipping blank lines and
// comments.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	return lines, scan.Err()
}
