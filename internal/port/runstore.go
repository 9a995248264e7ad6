package port

import "csvsplit/internal/domain"

// RunStore persists run history records.
type RunStore interface {
	PutRun(run domain.RunRecord) error

	GetRun(id string) (domain.RunRecord, error)

	// ListRuns returns all records ordered by start time, oldest first.
	ListRuns() ([]domain.RunRecord, error)

	Close() error
}
