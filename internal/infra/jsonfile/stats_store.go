package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"qliz/internal/domain"
)

// StatsStore persists session audit records as a JSON array, one element per
// session, in append order.
type StatsStore struct {
	path string
}

func NewStatsStore(path string) *StatsStore {
	return &StatsStore{path: path}
}

func (s *StatsStore) Load(_ context.Context) ([]domain.StatsRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []domain.StatsRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return records, nil
}

func (s *StatsStore) Save(_ context.Context, records []domain.StatsRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
