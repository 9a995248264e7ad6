package domain

import "time"

// SplitResult summarizes one completed split run.
type SplitResult struct {
	Files int
	Rows  int
	Names []string
}

// RunRecord is one entry in the run history.
type RunRecord struct {
	ID        string
	StartedAt time.Time
	Input     string
	OutputDir string
	ChunkSize int
	Files     int
	Rows      int
	Status    string // "ok" or "failed"
	Error     string
}

// BatchResult summarizes a batch run over many input files.
type BatchResult struct {
	FilesSplit    int
	ChunksWritten int
	Rows          int
	Errors        []string
}
