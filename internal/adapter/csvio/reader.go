package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"csvsplit/internal/domain"
	"csvsplit/internal/port"
)

// RowSource streams records from one open CSV file. The column count of
// every record is enforced against the first record read.
type RowSource struct {
	file    *os.File
	counter *countingReader
	csv     *csv.Reader
	records int
}

// Open opens path as a streaming row source using the given field delimiter.
// Open errors are classified as input-not-found or input-unreadable.
func Open(path string, comma rune) (port.RowSource, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %s", domain.ErrInputUnreadable, path)
		default:
			return nil, fmt.Errorf("failed to open input %s: %w", path, err)
		}
	}

	counter := &countingReader{r: f}
	r := csv.NewReader(counter)
	r.Comma = comma

	return &RowSource{file: f, counter: counter, csv: r}, nil
}

func (s *RowSource) Next() ([]string, error) {
	rec, err := s.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		// records counts the header too, so it equals the 1-based data-row
		// ordinal of the failing record. A malformed header reports row 1.
		ordinal := s.records
		if ordinal < 1 {
			ordinal = 1
		}
		return nil, &domain.RowParseError{Row: ordinal, Err: err}
	}
	s.records++
	return rec, nil
}

func (s *RowSource) BytesRead() int64 {
	return s.counter.n
}

func (s *RowSource) Close() error {
	return s.file.Close()
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
