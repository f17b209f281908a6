// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"covfix-core/splice"
	"covfix/internal/cli"
	"covfix/internal/logging"
	"covfix/internal/report"
	"covfix/internal/version"
	"covfix/internal/writers"

	"go.uber.org/zap"
)

// Exit codes: 0 success, 1 row-count mismatch, 2 usage/config error,
// 3 I/O error, 130 interrupted.
const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
	exitIO       = 3
	exitSignal   = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("covfix")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return exitOK
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return exitIO
			}
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "covfix version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return exitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return exitIO
		}
		return exitOK
	}

	log := logging.New(stderr, opts.Verbose, opts.Quiet)
	defer func() { _ = log.Sync() }()

	start := time.Now()

	labels, err := splice.LoadLabels(opts.Filter, opts.Delim())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitIO
	}
	log.Debug("filter file read", zap.String("path", opts.Filter), zap.Int("labels", len(labels)))

	if parent.Err() != nil {
		return exitSignal
	}

	chunks, err := splice.LoadChunks(opts.Covar, opts.Delim(), opts.Width)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitIO
	}
	log.Debug("covariance file read", zap.String("path", opts.Covar), zap.Int("chunks", len(chunks)))

	// Counts go out before the equality check so a mismatch can be eyeballed.
	log.Info("row counts", zap.Int("labels", len(labels)), zap.Int("chunks", len(chunks)))

	text, err := splice.Merge(labels, chunks, opts.Delim())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		var cm *splice.CountMismatchError
		if errors.As(err, &cm) {
			return exitMismatch
		}
		return exitIO
	}

	if parent.Err() != nil {
		return exitSignal
	}

	if err := writers.WriteOutput(opts.Output, text, outw); err != nil {
		if writers.IsBrokenPipe(err) {
			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		return exitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return exitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return exitIO
	}

	log.Debug("output written",
		zap.String("path", opts.Output),
		zap.Int("rows", len(labels)),
		zap.Duration("elapsed", time.Since(start)))

	if opts.Report != "" {
		rep, err := buildReport(opts, len(labels), len(chunks), text)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitIO
		}
		if err := report.Write(opts.Report, rep); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitIO
		}
		log.Debug("report written", zap.String("path", opts.Report))
	}

	return exitOK
}

// buildReport re-reads the inputs to digest the exact bytes the run consumed.
func buildReport(opts cli.Options, labels, chunks int, text string) (report.Report, error) {
	filterSum, err := report.DigestFile(opts.Filter)
	if err != nil {
		return report.Report{}, err
	}
	covarSum, err := report.DigestFile(opts.Covar)
	if err != nil {
		return report.Report{}, err
	}

	outPath := opts.Output
	if outPath == writers.Stdout {
		outPath = os.Stdout.Name()
	}
	return report.Report{
		SchemaID:      report.SchemaID,
		SchemaVersion: report.SchemaVersion,
		ToolVersion:   version.Version,
		Filter:        report.File{Path: opts.Filter, SHA256: filterSum},
		Covar:         report.File{Path: opts.Covar, SHA256: covarSum},
		Output:        report.File{Path: outPath, SHA256: report.Digest([]byte(text))},
		Labels:        labels,
		Chunks:        chunks,
		Rows:          labels,
		Width:         opts.Width,
	}, nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
