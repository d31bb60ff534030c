package cli

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dl/duext/internal/output"
	"github.com/dl/duext/internal/usage"
	"github.com/dl/duext/internal/walker"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // the walk or the output failed
	ExitUsage   = 2 // bad arguments or configuration
)

// Run executes one walk with the given config and returns the exit code.
// Paths and reports go to stdout, diagnostics to stderr.
func Run(cfg Config, stdout, stderr io.Writer) int {
	level := log.WarnLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(stderr, log.Options{
		Level:  level,
		Prefix: "duext",
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return ExitUsage
	}

	patterns := cfg.Excludes
	if cfg.ExcludeFrom != "" {
		extra, err := LoadPatternFile(cfg.ExcludeFrom)
		if err != nil {
			logger.Error("failed to read exclude file", "path", cfg.ExcludeFrom, "err", err)
			return ExitUsage
		}
		patterns = append(append([]string(nil), patterns...), extra...)
	}

	opts := walker.Options{
		Capacity: cfg.PathCapacity,
		Stat:     cfg.ByExtension || cfg.JSONOutput,
		Exclude:  walker.NewMatcher(patterns),
	}
	if cfg.ContinueOnError {
		opts.OnError = walker.SkipSubtree
		opts.OnSkip = func(err error) {
			logger.Warn("skipped subtree", "err", err)
		}
	}

	r := &runner{
		cfg:      cfg,
		opts:     opts,
		w:        newWriter(stdout),
		logger:   logger,
		start:    time.Now(),
		toStdout: stdout == os.Stdout,
	}
	if opts.Stat {
		return r.byExtension()
	}
	return r.list()
}

type runner struct {
	cfg      Config
	opts     walker.Options
	w        *output.Writer
	logger   *log.Logger
	start    time.Time
	toStdout bool
}

// list prints every discovered file path, one per line.
func (r *runner) list() int {
	var files int
	err := walker.Walk(r.cfg.Root, func(f *walker.File) error {
		files++
		return r.w.WriteFile(f)
	}, r.opts)

	// Paths emitted before a failure are still written out.
	if ferr := r.w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		r.logger.Error("walk failed", "root", r.cfg.Root, "err", err)
		return ExitFailure
	}

	r.logger.Debug("walk finished", "root", r.cfg.Root, "files", files, "elapsed", time.Since(r.start))
	return ExitOK
}

// byExtension sums file sizes per extension and prints the report.
func (r *runner) byExtension() int {
	tally := usage.NewTally(r.cfg.Compressed)
	err := walker.Walk(r.cfg.Root, func(f *walker.File) error {
		tally.Add(f.Name, f.Size)
		return nil
	}, r.opts)
	if err != nil {
		r.logger.Error("walk failed", "root", r.cfg.Root, "err", err)
		return ExitFailure
	}

	rep := output.NewReport(r.cfg.Root, usage.Summarize(tally, r.cfg.OtherThreshold))
	var formatter output.Formatter
	if r.cfg.JSONOutput {
		formatter = output.NewJSONFormatter()
	} else {
		formatter = output.NewTextFormatter(styles(r.cfg.Color, r.toStdout))
	}

	if _, err := r.w.Write(formatter.Format(nil, rep)); err != nil {
		r.logger.Error("failed to write report", "err", err)
		return ExitFailure
	}
	if err := r.w.Flush(); err != nil {
		r.logger.Error("failed to write report", "err", err)
		return ExitFailure
	}

	r.logger.Debug("walk finished",
		"root", r.cfg.Root,
		"files", tally.Files(),
		"extensions", tally.Len(),
		"run_id", rep.RunID,
		"elapsed", time.Since(r.start))
	return ExitOK
}

func newWriter(stdout io.Writer) *output.Writer {
	if stdout == os.Stdout {
		return output.NewWriter()
	}
	return output.NewStreamWriter(stdout)
}

func styles(mode ColorMode, toStdout bool) output.Styles {
	switch mode {
	case ColorAlways:
		return output.NewStyles(output.ForcedRenderer())
	case ColorAuto:
		if toStdout && output.StdoutIsTerminal() {
			return output.NewStyles(nil)
		}
	}
	return output.NoStyles()
}
