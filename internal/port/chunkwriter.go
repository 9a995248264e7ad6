package port

// ChunkWriter materializes one output file per row window.
type ChunkWriter interface {
	// EnsureDir creates dir (including parents) if it is absent.
	EnsureDir(dir string) error

	// WriteChunk creates dir/name and writes the header followed by rows.
	// The file handle is released on every path.
	WriteChunk(dir, name string, header []string, rows [][]string) error
}
