package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taigrr/collectit/internal/collect"
	"github.com/taigrr/collectit/internal/ctxlog"
	"github.com/taigrr/collectit/internal/filetype"
	"github.com/taigrr/collectit/internal/render"
	"github.com/taigrr/collectit/internal/types"
)

var (
	errNoPaths    = errors.New("no paths provided")
	errValidation = errors.New("validation failed")
)

type rootFlags struct {
	format     string
	brace      string
	coda       string
	ignoreDirs bool
	ignoreSize bool
	exclude    []string
	filetypes  string
	list       bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "collectit [flags] path...",
		Short: "Concatenate files into one fenced, copy-paste-ready bundle",
		Long: `collectit validates every path it is given, then prints each file under a
header line and between fence delimiters. The opening fence carries a
language tag inferred from the file name.

All paths are checked before anything is printed. If any path is missing,
is a directory, is not a regular file, is too large or cannot be read, every
problem is listed and no content is written.`,
		Example: `collectit main.go go.mod
collectit -f '// %f' -b '~~~' src/*.py
collectit --ignore_dirs --ignore_size -x '*.lock' *`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(cmd, flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.format, "fmt", "f", types.DefaultFormat, "header template; every %f is replaced by the path")
	f.StringVarP(&flags.brace, "brace", "b", types.DefaultBrace, "opening fence delimiter")
	f.StringVarP(&flags.coda, "coda", "c", "", "closing fence delimiter (default: same as --brace)")
	f.BoolVar(&flags.ignoreDirs, "ignore_dirs", false, "skip directories without reporting an error")
	f.BoolVar(&flags.ignoreSize, "ignore_size", false, "skip files over the size limit without reporting an error")
	f.StringArrayVarP(&flags.exclude, "exclude", "x", nil, "skip paths matching this glob (repeatable)")
	f.StringVar(&flags.filetypes, "filetypes", "", "YAML file with extra name/extension to language tag mappings")
	f.BoolVar(&flags.list, "list", false, "print a YAML manifest of accepted files instead of their content")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log debug details to stderr")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(c.OutOrStdout(), "failed to parse arguments: %v\n%s", err, c.UsageString())
		return fmt.Errorf("failed to parse arguments: %w", err)
	})

	return cmd
}

func (f rootFlags) options(paths []string) types.Options {
	return types.Options{
		Format:     f.format,
		Brace:      f.brace,
		Coda:       f.coda,
		IgnoreDirs: f.ignoreDirs,
		IgnoreSize: f.ignoreSize,
		Exclude:    f.exclude,
		Paths:      paths,
	}
}

func runCollect(cmd *cobra.Command, flags rootFlags, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "No paths provided.")
		return errNoPaths
	}

	logger := ctxlog.New(cmd.ErrOrStderr(), flags.verbose)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)
	opts := flags.options(args)

	table := filetype.Default()
	if flags.filetypes != "" {
		var err error
		table, err = filetype.Load(flags.filetypes)
		if err != nil {
			return err
		}
		logger.Debug("loaded filetype table", "path", flags.filetypes)
	}

	validator, err := collect.New(opts)
	if err != nil {
		return err
	}

	report := validator.Validate(ctx, opts.Paths)
	if !report.OK() {
		diagnostics := report.Diagnostics()
		if err := printLines(out, diagnostics); err != nil {
			return err
		}
		logIgnoreHints(logger, report)
		return fmt.Errorf("%w: %d of %d paths rejected", errValidation, len(diagnostics), len(opts.Paths))
	}

	emitter := render.New(opts, table)
	accepted := report.Accepted()
	if flags.list {
		return emitter.WriteManifest(out, accepted)
	}

	paths := make([]string, 0, len(accepted))
	for _, o := range accepted {
		paths = append(paths, o.Path)
	}
	logger.Debug("emitting files", "accepted", len(paths), "skipped", len(report.Skipped()))
	return emitter.Emit(ctx, out, paths)
}

// logIgnoreHints points at the flags that would have skipped a rejection.
func logIgnoreHints(logger *slog.Logger, report types.Report) {
	var dirs, oversize bool
	for _, o := range report.Rejected() {
		switch {
		case errors.Is(o.Err, collect.ErrIsDirectory):
			dirs = true
		case errors.Is(o.Err, collect.ErrTooLarge):
			oversize = true
		}
	}

	if dirs {
		logger.Info("directories cannot be collected; pass --ignore_dirs to skip them")
	}
	if oversize {
		logger.Info("files over the size limit cannot be collected; pass --ignore_size to skip them")
	}
}

func printLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
