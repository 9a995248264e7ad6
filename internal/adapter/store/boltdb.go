package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"csvsplit/internal/domain"
)

var bucketRuns = []byte("runs")

// BoltStore persists run history in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRuns); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketRuns, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type runMeta struct {
	StartedAt int64  `json:"started_at"`
	Input     string `json:"input"`
	OutputDir string `json:"output_dir"`
	ChunkSize int    `json:"chunk_size"`
	Files     int    `json:"files"`
	Rows      int    `json:"rows"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

func (s *BoltStore) PutRun(run domain.RunRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := runMeta{
			StartedAt: run.StartedAt.Unix(),
			Input:     run.Input,
			OutputDir: run.OutputDir,
			ChunkSize: run.ChunkSize,
			Files:     run.Files,
			Rows:      run.Rows,
			Status:    run.Status,
			Error:     run.Error,
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketRuns).Put([]byte(run.ID), data)
	})
}

func (s *BoltStore) GetRun(id string) (domain.RunRecord, error) {
	var run domain.RunRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRuns).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("run not found: %s", id)
		}
		var meta runMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		run = fromMeta(id, meta)
		return nil
	})
	return run, err
}

func (s *BoltStore) ListRuns() ([]domain.RunRecord, error) {
	var runs []domain.RunRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		return b.ForEach(func(k, v []byte) error {
			var meta runMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			runs = append(runs, fromMeta(string(k), meta))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})
	return runs, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func fromMeta(id string, meta runMeta) domain.RunRecord {
	return domain.RunRecord{
		ID:        id,
		StartedAt: time.Unix(meta.StartedAt, 0),
		Input:     meta.Input,
		OutputDir: meta.OutputDir,
		ChunkSize: meta.ChunkSize,
		Files:     meta.Files,
		Rows:      meta.Rows,
		Status:    meta.Status,
		Error:     meta.Error,
	}
}
