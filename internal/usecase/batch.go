package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"csvsplit/internal/adapter/fs"
	"csvsplit/internal/domain"
)

// Batch splits every CSV discovered under a root directory.
type Batch struct {
	walker   *fs.Walker
	splitter *Splitter
}

func NewBatch(walker *fs.Walker, splitter *Splitter) *Batch {
	return &Batch{walker: walker, splitter: splitter}
}

// Run splits each discovered input into a subdirectory of outputDir that
// mirrors the input's path under root. A failing input is recorded and the
// remaining inputs are still processed.
func (b *Batch) Run(root, outputDir string, chunkSize int) (*domain.BatchResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	files, err := b.walker.Walk(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to discover input files: %w", err)
	}

	result := &domain.BatchResult{}
	for _, file := range files {
		dest := filepath.Join(outputDir, destDir(absRoot, file.Path))
		res, err := b.splitter.Split(file.Path, dest, chunkSize, nil)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Path, err))
			continue
		}
		result.FilesSplit++
		result.ChunksWritten += res.Files
		result.Rows += res.Rows
	}

	return result, nil
}

// destDir returns the per-input output subdirectory: the input's path
// relative to the root, without the extension. Keeping the relative
// directory means same-named inputs in different directories never share a
// destination, so one run's chunks cannot overwrite another's.
func destDir(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
