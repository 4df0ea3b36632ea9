package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"qliz/internal/domain"
)

// ScoreboardStore persists the scoreboard as one JSON document with
// whole-file overwrite semantics. A missing file reads as an empty board;
// a present-but-unparseable file is surfaced as an error.
type ScoreboardStore struct {
	path string
}

func NewScoreboardStore(path string) *ScoreboardStore {
	return &ScoreboardStore{path: path}
}

func (s *ScoreboardStore) Load(_ context.Context) (domain.Scoreboard, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.Scoreboard{}, nil
	}
	if err != nil {
		return domain.Scoreboard{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var sb domain.Scoreboard
	if err := json.Unmarshal(data, &sb); err != nil {
		return domain.Scoreboard{}, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return sb, nil
}

func (s *ScoreboardStore) Save(_ context.Context, sb domain.Scoreboard) error {
	data, err := json.MarshalIndent(sb, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scoreboard: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
