// Command intervals segments recorder CSV logs into navigation intervals and
// prints the result as JSON.
//
//	intervals [-d delimiter] [-gap seconds] [-ports file] [-raw] [-o out.json] file...
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/jengzang/vessel-intervals-go/internal/analysis"
	"github.com/jengzang/vessel-intervals-go/internal/config"
	"github.com/jengzang/vessel-intervals-go/internal/ingest"
	"github.com/jengzang/vessel-intervals-go/internal/logging"
	"github.com/jengzang/vessel-intervals-go/internal/ports"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run returns 0 on success, 1 when the batch produced no result and 2 on
// usage or I/O errors
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := logging.NewStructuredLogger(stderr, cfg.LogLevel)

	fs := flag.NewFlagSet("intervals", flag.ContinueOnError)
	fs.SetOutput(stderr)
	delimiter := fs.String("d", ",", `column delimiter ("\t" or "tab" for tabs)`)
	gap := fs.Float64("gap", cfg.GapThreshold.Seconds(), "gap threshold in seconds (0 disables)")
	portsFile := fs.String("ports", cfg.PortsFile, "JSON port catalog (default: built-in)")
	raw := fs.Bool("raw", false, "print normalized rows instead of intervals")
	out := fs.String("o", "", "write JSON to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: intervals [flags] file...")
		fs.PrintDefaults()
		return 2
	}
	if *gap < 0 {
		fmt.Fprintln(stderr, "gap must not be negative")
		return 2
	}

	catalog := ports.Default()
	if *portsFile != "" {
		if catalog, err = ports.Load(*portsFile); err != nil {
			logging.LogError(logger, "failed to load port catalog", err, slog.String("path", *portsFile))
			return 2
		}
	}

	opts := cfg.AnalysisOptions()
	opts.Ingest.Delimiter = ingest.ResolveDelimiter(*delimiter)
	opts.Segment.GapThreshold = time.Duration(*gap * float64(time.Second))
	engine := analysis.NewEngine(catalog, opts)

	files, readErrs, err := ingest.ReadFiles(ctx, fs.Args())
	if err != nil {
		logging.LogError(logger, "failed to read files", err)
		return 2
	}

	var (
		result  any
		success bool
		errs    *[]string
	)
	if *raw {
		res, err := engine.RawRows(ctx, files)
		if err != nil {
			logging.LogError(logger, "batch failed", err)
			return 2
		}
		result, success, errs = res, res.Success, &res.Meta.Errors
	} else {
		res, err := engine.Process(ctx, files)
		if err != nil {
			logging.LogError(logger, "batch failed", err)
			return 2
		}
		result, success, errs = res, res.Success, &res.Meta.Errors
		if res.Data != nil {
			logging.LogOperation(logger, "batch_processed",
				slog.Int("files", len(files)),
				slog.Int("rows", res.Data.Summary.ValidRows),
				slog.Int("intervals", res.Data.Summary.TotalIntervals))
		}
	}
	*errs = append(readErrs, *errs...)

	if err := writeJSON(result, *out, stdout, logger); err != nil {
		logging.LogError(logger, "failed to write result", err)
		return 2
	}
	if !success {
		return 1
	}
	return 0
}

func writeJSON(v any, path string, stdout io.Writer, logger *slog.Logger) error {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer logging.SafeCloseWithLogging(f, logger, "write_output")
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
