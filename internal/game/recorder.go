package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qliz/internal/domain"
)

// ScoreboardStore abstracts how the scoreboard document is persisted
// (flat file, Redis, etc). Load returns an empty scoreboard when the store
// does not exist yet; a present-but-corrupt store is an error.
type ScoreboardStore interface {
	Load(ctx context.Context) (domain.Scoreboard, error)
	Save(ctx context.Context, sb domain.Scoreboard) error
}

// StatsStore persists the append-only sequence of session audit records.
type StatsStore interface {
	Load(ctx context.Context) ([]domain.StatsRecord, error)
	Save(ctx context.Context, records []domain.StatsRecord) error
}

// Recorder appends a finished session to both stores. The two writes are
// independent and non-transactional; a failure in either is reported to the
// caller but the in-memory result is never rolled back.
type Recorder struct {
	scores ScoreboardStore
	stats  StatsStore
	title  string
	desc   string
	now    func() time.Time
}

func NewRecorder(scores ScoreboardStore, stats StatsStore, quizTitle, quizDescription string) *Recorder {
	return &Recorder{
		scores: scores,
		stats:  stats,
		title:  quizTitle,
		desc:   quizDescription,
		now:    time.Now,
	}
}

// RecordSession performs both appends and joins any failures. Each store is
// read-modify-written as a whole document.
func (r *Recorder) RecordSession(ctx context.Context, result domain.SessionResult) error {
	return errors.Join(
		r.appendScore(ctx, result),
		r.appendStats(ctx, result),
	)
}

func (r *Recorder) appendScore(ctx context.Context, result domain.SessionResult) error {
	sb, err := r.scores.Load(ctx)
	if err != nil {
		return fmt.Errorf("load scoreboard: %w", err)
	}

	sb.QuizTitle = r.title
	sb.QuizDescription = r.desc
	sb.LastUpdated = r.now()
	sb.Scores = append(sb.Scores, domain.EntryFromResult(result))

	if err := r.scores.Save(ctx, sb); err != nil {
		return fmt.Errorf("save scoreboard: %w", err)
	}
	return nil
}

func (r *Recorder) appendStats(ctx context.Context, result domain.SessionResult) error {
	records, err := r.stats.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	records = append(records, domain.StatsFromResult(result))

	if err := r.stats.Save(ctx, records); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}
