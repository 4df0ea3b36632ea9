package domain

import (
	"encoding/json"
	"time"
)

// Scoreboard wraps the persisted score entries with quiz metadata. Entries
// are append-only; display order is computed by the leaderboard query, never
// stored.
type Scoreboard struct {
	QuizTitle       string            `json:"quiz_title"`
	QuizDescription string            `json:"quiz_description"`
	LastUpdated     time.Time         `json:"last_updated"`
	Scores          []ScoreboardEntry `json:"scores"`
}

// UnmarshalJSON accepts both the current wrapped document and the legacy
// format where the file is a bare array of entries.
func (s *Scoreboard) UnmarshalJSON(data []byte) error {
	var legacy []ScoreboardEntry
	if err := json.Unmarshal(data, &legacy); err == nil {
		*s = Scoreboard{Scores: legacy}
		return nil
	}

	type scoreboard Scoreboard
	var wrapped scoreboard
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*s = Scoreboard(wrapped)
	return nil
}
