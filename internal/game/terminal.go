package game

import (
	"time"

	"qliz/internal/domain"
)

// EventKind classifies a single input event from the terminal collaborator.
type EventKind int

const (
	// EventUp moves the highlight to the previous option, wrapping.
	EventUp EventKind = iota
	// EventDown moves the highlight to the next option, wrapping.
	EventDown
	// EventConfirm commits the currently highlighted option.
	EventConfirm
	// EventSelect commits the option at Event.Index directly.
	EventSelect
)

// Event is one recognized keystroke. Index is only meaningful for
// EventSelect.
type Event struct {
	Kind  EventKind
	Index int
}

// Frame is everything the presentation needs to draw one question tick.
type Frame struct {
	Question    domain.Question
	Number      int
	Total       int
	Highlighted int
	Score       int
	// ElapsedFraction is elapsed/limit in [0, 1]; the renderer derives the
	// countdown bar from it without knowing wall-clock times.
	ElapsedFraction float64
	Remaining       time.Duration
}

// Verdict is shown after a question reaches a terminal state.
type Verdict struct {
	Correct       bool
	TimedOut      bool
	CorrectAnswer string
	Explanation   string
}

// Terminal is the display/input collaborator the core drives. The core never
// touches coordinates, colors, or escape codes; it emits semantic frames and
// consumes semantic events.
type Terminal interface {
	// RenderQuestionFrame draws the current question state. Called once per
	// poll iteration.
	RenderQuestionFrame(f Frame)
	// PollEvent waits at most timeout for one input event. ok is false when
	// the window elapsed without a recognized key.
	PollEvent(timeout time.Duration) (ev Event, ok bool)
	// RenderOutcome shows the per-question verdict.
	RenderOutcome(v Verdict)
}
