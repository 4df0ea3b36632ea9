package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"qliz/internal/domain"
)

// ScoreboardStore keeps the scoreboard document under a single Redis key,
// with the same read-modify-write-whole-document semantics as the flat-file
// store. Useful when several kiosks share one board; access is still one
// writer at a time by design.
type ScoreboardStore struct {
	client *redis.Client
	key    string
}

func NewScoreboardStore(client *redis.Client, key string) *ScoreboardStore {
	if key == "" {
		key = "qliz:scoreboard"
	}
	return &ScoreboardStore{client: client, key: key}
}

func (s *ScoreboardStore) Load(ctx context.Context) (domain.Scoreboard, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return domain.Scoreboard{}, nil
	}
	if err != nil {
		return domain.Scoreboard{}, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	var sb domain.Scoreboard
	if err := json.Unmarshal(data, &sb); err != nil {
		return domain.Scoreboard{}, fmt.Errorf("parse scoreboard at %s: %w", s.key, err)
	}
	return sb, nil
}

func (s *ScoreboardStore) Save(ctx context.Context, sb domain.Scoreboard) error {
	data, err := json.Marshal(sb)
	if err != nil {
		return fmt.Errorf("marshal scoreboard: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
