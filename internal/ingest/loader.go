package ingest

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/vessel-intervals-go/internal/models"
)

// Options configures the row parser
type Options struct {
	Delimiter string
	Columns   Columns
}

// DefaultOptions returns comma-separated input with the recorder's columns
func DefaultOptions() Options {
	return Options{Delimiter: ",", Columns: DefaultColumns()}
}

// Batch is the merged, time-sorted output of the row parser
type Batch struct {
	Rows      []models.RawRow // valid rows only
	TotalRows int             // data rows read from usable files
	Dropped   int             // rows rejected by Normalize
	Meta      models.ProcessingMeta
}

// Load parses every file, merges the usable ones and normalizes the rows.
// Files are parsed concurrently, but the merge happens once all of them are
// done and follows the input order. File-level problems end up in Meta.Errors;
// the only returned error is a cancelled context.
func Load(ctx context.Context, files []models.FileContent, opts Options) (*Batch, error) {
	if opts.Columns == (Columns{}) {
		opts.Columns = DefaultColumns()
	}

	tables := make([]Table, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tables[i] = ParseCSV(f.Content, opts.Delimiter, opts.Columns)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	batch := &Batch{
		Meta: models.ProcessingMeta{
			ProcessedFiles: []models.FileStat{},
			Errors:         []string{},
		},
	}

	usable := make([]Table, 0, len(tables))
	for i, t := range tables {
		name := files[i].Name
		switch {
		case strings.TrimSpace(files[i].Content) == "":
			batch.Meta.Errors = append(batch.Meta.Errors, fmt.Sprintf("empty file: %s", name))
		case t.Len() == 0:
			batch.Meta.Errors = append(batch.Meta.Errors, fmt.Sprintf("file has no valid data: %s", name))
		default:
			usable = append(usable, t)
			batch.Meta.ProcessedFiles = append(batch.Meta.ProcessedFiles, models.FileStat{File: name, Rows: t.Len()})
			batch.TotalRows += t.Len()
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	entries := mergeTables(usable, opts.Columns)
	batch.Rows = make([]models.RawRow, 0, len(entries))
	for _, e := range entries {
		row, ok := Normalize(e.rec, e.navColumn, opts.Columns)
		if !ok {
			batch.Dropped++
			continue
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}
