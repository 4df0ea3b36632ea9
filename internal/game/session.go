package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"qliz/internal/domain"
)

// Session runs one complete play-through for a single player. It exclusively
// owns its outcomes until the finished result is handed to the recorder.
type Session struct {
	bank    *Bank
	term    Terminal
	count   int
	timeout time.Duration
	rnd     *rand.Rand
	now     func() time.Time
}

// NewSession wires a session against a bank and a terminal collaborator.
func NewSession(bank *Bank, term Terminal, questionsPerGame int, timeout time.Duration) *Session {
	return NewSessionWithClock(bank, term, questionsPerGame, timeout,
		rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewSessionWithClock allows deterministic selection and timestamps in tests.
func NewSessionWithClock(bank *Bank, term Terminal, questionsPerGame int, timeout time.Duration, rnd *rand.Rand, now func() time.Time) *Session {
	return &Session{
		bank:    bank,
		term:    term,
		count:   questionsPerGame,
		timeout: timeout,
		rnd:     rnd,
		now:     now,
	}
}

// Run plays every selected question through the timed loop and returns the
// immutable session result. The loop yields after each question so the
// verdict is shown before the next one starts.
func (s *Session) Run(player domain.Player) domain.SessionResult {
	questions := s.bank.Select(s.rnd, s.count)
	total := len(questions)

	result := domain.SessionResult{
		SessionID: uuid.NewString(),
		Player:    player,
		Outcomes:  make([]domain.QuestionOutcome, 0, total),
	}

	for i, q := range questions {
		outcome := askQuestion(s.term, q, i+1, total, result.Score, s.timeout, s.now)
		result.Outcomes = append(result.Outcomes, outcome)
		result.TotalTime += outcome.TimeTaken
		if outcome.IsCorrect {
			result.Score++
		}

		correctText := ""
		if q.Correct >= 0 && q.Correct < len(q.Options) {
			correctText = q.Options[q.Correct]
		}
		s.term.RenderOutcome(Verdict{
			Correct:       outcome.IsCorrect,
			TimedOut:      outcome.TimedOut,
			CorrectAnswer: correctText,
			Explanation:   q.Explanation,
		})
	}

	result.Timestamp = s.now()
	return result
}
