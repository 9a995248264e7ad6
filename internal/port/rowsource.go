package port

// RowSource is a pull-based stream of CSV records. It is finite and not
// restartable: re-iterating requires opening a new source.
type RowSource interface {
	// Next returns the next record, or io.EOF once the stream is exhausted.
	Next() ([]string, error)

	// BytesRead reports how many input bytes have been consumed so far.
	BytesRead() int64

	Close() error
}
