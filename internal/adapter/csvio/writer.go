package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"csvsplit/internal/domain"
)

// ChunkWriter writes one output file per window, header first, using
// standard RFC 4180 quoting.
type ChunkWriter struct {
	comma rune
}

func NewChunkWriter(comma rune) *ChunkWriter {
	return &ChunkWriter{comma: comma}
}

func (w *ChunkWriter) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrOutputDir, dir, err)
	}
	return nil
}

func (w *ChunkWriter) WriteChunk(dir, name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	cw.Comma = w.comma

	if err := cw.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			f.Close()
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
