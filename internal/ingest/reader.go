package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/vessel-intervals-go/internal/models"
)

// ReadFiles reads the paths concurrently. Unreadable files are reported as
// error strings and left out; the others keep the input order.
func ReadFiles(ctx context.Context, paths []string) ([]models.FileContent, []string, error) {
	contents := make([]*models.FileContent, len(paths))
	failures := make([]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				failures[i] = fmt.Sprintf("error reading %s: %v", filepath.Base(path), err)
				return nil
			}
			contents[i] = &models.FileContent{Name: filepath.Base(path), Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("read cancelled: %w", err)
	}

	files := make([]models.FileContent, 0, len(paths))
	errs := []string{}
	for i := range paths {
		if contents[i] != nil {
			files = append(files, *contents[i])
		} else if failures[i] != "" {
			errs = append(errs, failures[i])
		}
	}
	return files, errs, nil
}
