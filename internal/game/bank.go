package game

import (
	"context"
	"math/rand"

	"qliz/internal/domain"
)

// BankLoader fetches question-bank content from a backing store (inline
// config, Postgres, etc).
type BankLoader interface {
	LoadBank(ctx context.Context, bankID string) ([]domain.Question, error)
}

// Bank is the immutable in-memory question set for the process lifetime.
type Bank struct {
	questions []domain.Question
}

// NewBank copies questions so later mutation of the source slice cannot
// leak into the bank.
func NewBank(questions []domain.Question) *Bank {
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)
	return &Bank{questions: qs}
}

// Len reports the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a copy of the full bank in load order.
func (b *Bank) Questions() []domain.Question {
	qs := make([]domain.Question, len(b.questions))
	copy(qs, b.questions)
	return qs
}

// Select draws count distinct questions for one session. When count covers
// the whole bank the questions come back in bank order, unshuffled;
// otherwise it is a uniform sample without replacement. Selection never
// mutates the bank.
func (b *Bank) Select(rnd *rand.Rand, count int) []domain.Question {
	if count >= len(b.questions) {
		return b.Questions()
	}

	picked := make([]domain.Question, len(b.questions))
	copy(picked, b.questions)
	for i := 0; i < count; i++ {
		j := i + rnd.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:count:count]
}
