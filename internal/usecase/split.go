package usecase

import (
	"errors"
	"fmt"
	"io"
	"time"

	"csvsplit/internal/domain"
	"csvsplit/internal/port"
)

// timestampLayout formats the run start time embedded in output filenames.
const timestampLayout = "2006-01-02--15-04-05"

// ProgressFunc is invoked after each window is written.
type ProgressFunc func(rows, files int, bytesRead int64)

// Splitter reads an input row stream in bounded windows and writes each
// window to its own sequentially named output file, header included. At most
// one window plus the header is held in memory, and one input handle and one
// output file are open at any instant.
type Splitter struct {
	open  func(path string) (port.RowSource, error)
	write port.ChunkWriter
	now   func() time.Time
}

// NewSplitter creates a splitter. now supplies the run timestamp used in
// output filenames; pass nil for the wall clock.
func NewSplitter(open func(string) (port.RowSource, error), writer port.ChunkWriter, now func() time.Time) *Splitter {
	if now == nil {
		now = time.Now
	}
	return &Splitter{open: open, write: writer, now: now}
}

// Split reads inputPath in windows of up to chunkSize data rows and writes
// each window to outputDir as "<timestamp>--<NN>.csv". The sequence starts
// at 1 and has no gaps; filenames within one run sort in write order.
// Header-only or empty input yields a zero result and no output files.
// progress may be nil.
func (s *Splitter) Split(inputPath, outputDir string, chunkSize int, progress ProgressFunc) (*domain.SplitResult, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidChunkSize, chunkSize)
	}

	src, err := s.open(inputPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	header, err := src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &domain.SplitResult{}, nil
		}
		return nil, err
	}

	// The output directory is created only once the input is known to be
	// readable, so a missing input never leaves an empty directory behind.
	if err := s.write.EnsureDir(outputDir); err != nil {
		return nil, err
	}

	// One timestamp for the whole run; every output file shares it.
	stamp := s.now().Format(timestampLayout)
	result := &domain.SplitResult{}

	for seq := 1; ; seq++ {
		window, err := nextWindow(src, chunkSize)
		if err != nil {
			return nil, err
		}
		if len(window) == 0 {
			break
		}

		name := chunkName(stamp, seq)
		if err := s.write.WriteChunk(outputDir, name, header, window); err != nil {
			return nil, &domain.WriteError{Seq: seq, Name: name, Err: err}
		}

		result.Files++
		result.Rows += len(window)
		result.Names = append(result.Names, name)

		if progress != nil {
			progress(result.Rows, result.Files, src.BytesRead())
		}
	}

	return result, nil
}

// nextWindow drains up to size rows from src. It returns an empty window
// once the stream is exhausted.
func nextWindow(src port.RowSource, size int) ([][]string, error) {
	capHint := size
	if capHint > 1024 {
		capHint = 1024
	}

	window := make([][]string, 0, capHint)
	for len(window) < size {
		row, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		window = append(window, row)
	}
	return window, nil
}

// chunkName builds "<timestamp>--<NN>.csv". The sequence is zero-padded to
// at least two digits and widens on its own past 99.
func chunkName(stamp string, seq int) string {
	return fmt.Sprintf("%s--%02d.csv", stamp, seq)
}
