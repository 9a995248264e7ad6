package domain

import (
	"errors"
	"fmt"
)

// Failure kinds for a split run. All of them are fatal to the invocation;
// there are no retries.
var (
	ErrInputNotFound    = errors.New("input file not found")
	ErrInputUnreadable  = errors.New("input file not readable")
	ErrOutputDir        = errors.New("output directory unavailable")
	ErrInvalidChunkSize = errors.New("chunk size must be a positive integer")
)

// RowParseError reports a malformed row in the input stream. Row is the
// 1-based ordinal of the offending data row.
type RowParseError struct {
	Row int
	Err error
}

func (e *RowParseError) Error() string {
	return fmt.Sprintf("malformed row %d: %v", e.Row, e.Err)
}

func (e *RowParseError) Unwrap() error { return e.Err }

// WriteError reports a failure while writing one output file. Seq is the
// sequence number of the file being written. Files completed before the
// failure are left in place.
type WriteError struct {
	Seq  int
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed writing output file %d (%s): %v", e.Seq, e.Name, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
