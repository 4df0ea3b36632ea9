package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"qliz/internal/domain"
)

type countingLoader struct {
	calls int
	banks map[string][]domain.Question
}

func (l *countingLoader) LoadBank(_ context.Context, bankID string) ([]domain.Question, error) {
	l.calls++
	if questions, ok := l.banks[bankID]; ok {
		return questions, nil
	}
	return nil, domain.ErrBankNotFound
}

func testBank() []domain.Question {
	return []domain.Question{
		{ID: 1, Text: "2+2?", Options: []string{"3", "4"}, Correct: 1},
		{ID: 2, Text: "capital of France?", Options: []string{"Paris", "Rome"}, Correct: 0},
	}
}

func TestLoadBankCachesWithinTTL(t *testing.T) {
	loader := &countingLoader{banks: map[string][]domain.Question{"default": testBank()}}
	repo := NewBankRepository(loader, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		questions, err := repo.LoadBank(ctx, "default")
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if len(questions) != 2 {
			t.Fatalf("load %d: expected 2 questions, got %d", i, len(questions))
		}
	}

	if loader.calls != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", loader.calls)
	}
}

func TestLoadBankRefetchesAfterExpiry(t *testing.T) {
	loader := &countingLoader{banks: map[string][]domain.Question{"default": testBank()}}
	repo := NewBankRepository(loader, time.Minute)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.clock = func() time.Time { return now }

	ctx := context.Background()
	if _, err := repo.LoadBank(ctx, "default"); err != nil {
		t.Fatalf("first load: %v", err)
	}

	// jitter adds at most 10%, so two TTLs later the entry is stale
	now = now.Add(2 * time.Minute)
	if _, err := repo.LoadBank(ctx, "default"); err != nil {
		t.Fatalf("second load: %v", err)
	}

	if loader.calls != 2 {
		t.Fatalf("expected refetch after expiry, got %d calls", loader.calls)
	}
}

func TestLoadBankDistinctIDsAreCachedSeparately(t *testing.T) {
	loader := &countingLoader{banks: map[string][]domain.Question{
		"default": testBank(),
		"history": testBank()[:1],
	}}
	repo := NewBankRepository(loader, time.Minute)
	ctx := context.Background()

	if _, err := repo.LoadBank(ctx, "default"); err != nil {
		t.Fatalf("default: %v", err)
	}
	history, err := repo.LoadBank(ctx, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected the history bank, got %d questions", len(history))
	}
	if loader.calls != 2 {
		t.Fatalf("expected one fetch per bank, got %d", loader.calls)
	}
}

func TestLoadBankErrorsAreNotCached(t *testing.T) {
	loader := &countingLoader{banks: map[string][]domain.Question{}}
	repo := NewBankRepository(loader, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.LoadBank(ctx, "missing"); !errors.Is(err, domain.ErrBankNotFound) {
			t.Fatalf("load %d: expected bank-not-found, got %v", i, err)
		}
	}
	if loader.calls != 2 {
		t.Fatalf("failed loads must not be cached, got %d calls", loader.calls)
	}
}

func TestStaticBankLoader(t *testing.T) {
	loader := NewStaticBankLoader(map[string][]domain.Question{"default": testBank()})
	ctx := context.Background()

	questions, err := loader.LoadBank(ctx, "default")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	if _, err := loader.LoadBank(ctx, "absent"); !errors.Is(err, domain.ErrBankNotFound) {
		t.Fatalf("expected bank-not-found, got %v", err)
	}
}
