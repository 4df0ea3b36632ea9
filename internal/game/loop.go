package game

import (
	"time"

	"qliz/internal/domain"
)

// pollInterval bounds each input wait so the timeout check is re-evaluated
// frequently without busy-spinning.
const pollInterval = 50 * time.Millisecond

// askQuestion runs the per-question state machine: render a frame, poll for
// one event, re-check the deadline, until the question is answered or the
// time limit expires. The returned outcome has TimeTaken equal to the full
// limit on timeout, or the actual elapsed time on an answer.
func askQuestion(term Terminal, q domain.Question, number, total, score int, limit time.Duration, now func() time.Time) domain.QuestionOutcome {
	highlighted := 0
	start := now()

	for {
		elapsed := now().Sub(start)
		if elapsed >= limit {
			return domain.QuestionOutcome{
				QuestionID:   q.ID,
				QuestionText: q.Text,
				Options:      q.Options,
				Correct:      q.Correct,
				PlayerAnswer: nil,
				IsCorrect:    false,
				TimeTaken:    limit.Seconds(),
				TimedOut:     true,
			}
		}

		term.RenderQuestionFrame(Frame{
			Question:        q,
			Number:          number,
			Total:           total,
			Highlighted:     highlighted,
			Score:           score,
			ElapsedFraction: float64(elapsed) / float64(limit),
			Remaining:       limit - elapsed,
		})

		wait := pollInterval
		if remaining := limit - elapsed; remaining < wait {
			wait = remaining
		}

		ev, ok := term.PollEvent(wait)
		if !ok {
			continue
		}

		switch ev.Kind {
		case EventUp:
			if n := len(q.Options); n > 0 {
				highlighted = (highlighted - 1 + n) % n
			}
		case EventDown:
			if n := len(q.Options); n > 0 {
				highlighted = (highlighted + 1) % n
			}
		case EventConfirm:
			if len(q.Options) > 0 {
				return answered(q, highlighted, now().Sub(start))
			}
		case EventSelect:
			if ev.Index >= 0 && ev.Index < len(q.Options) {
				return answered(q, ev.Index, now().Sub(start))
			}
			// out-of-range direct select is a no-op
		}
	}
}

func answered(q domain.Question, index int, elapsed time.Duration) domain.QuestionOutcome {
	answer := index
	return domain.QuestionOutcome{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		Options:      q.Options,
		Correct:      q.Correct,
		PlayerAnswer: &answer,
		IsCorrect:    index == q.Correct,
		TimeTaken:    elapsed.Seconds(),
	}
}
