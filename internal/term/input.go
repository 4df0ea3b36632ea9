package term

import (
	"os"
	"time"

	"golang.org/x/term"

	"qliz/internal/game"
)

// EnterGame switches stdin to raw mode and starts the key reader. Must be
// paired with LeaveGame, which restores the terminal state.
func (s *Screen) EnterGame() error {
	state, err := term.MakeRaw(int(s.in.Fd()))
	if err != nil {
		return err
	}
	s.state = state
	s.stop = make(chan struct{})
	go s.readKeys()
	return nil
}

// LeaveGame stops the reader and restores cooked mode.
func (s *Screen) LeaveGame() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	if s.state != nil {
		_ = term.Restore(int(s.in.Fd()), s.state)
		s.state = nil
	}
}

// PollEvent waits at most timeout for one recognized key. Unrecognized keys
// never surface here; they are dropped by the reader.
func (s *Screen) PollEvent(timeout time.Duration) (game.Event, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-s.events:
		return ev, true
	case <-timer.C:
		return game.Event{}, false
	}
}

// readKeys pumps raw bytes from stdin into semantic events until the game
// screen is left. Arrow keys arrive as ESC [ A/B sequences.
func (s *Screen) readKeys() {
	buf := make([]byte, 64)
	for {
		select {
		case <-s.stop:
			return
		default:
		}

		n, err := s.in.Read(buf)
		if err != nil {
			return
		}

		for i := 0; i < n; i++ {
			switch b := buf[i]; {
			case b == 0x1b && i+2 < n && buf[i+1] == '[':
				switch buf[i+2] {
				case 'A':
					s.emit(game.Event{Kind: game.EventUp})
				case 'B':
					s.emit(game.Event{Kind: game.EventDown})
				}
				i += 2
			case b == '\r' || b == '\n' || b == ' ':
				s.emit(game.Event{Kind: game.EventConfirm})
			case b >= '1' && b <= '6':
				s.emit(game.Event{Kind: game.EventSelect, Index: int(b - '1')})
			case b >= 'a' && b <= 'f':
				s.emit(game.Event{Kind: game.EventSelect, Index: int(b - 'a')})
			case b >= 'A' && b <= 'F':
				s.emit(game.Event{Kind: game.EventSelect, Index: int(b - 'A')})
			case b == 0x03: // Ctrl-C
				_ = term.Restore(int(s.in.Fd()), s.state)
				os.Exit(130)
			}
		}
	}
}

func (s *Screen) emit(ev game.Event) {
	select {
	case s.events <- ev:
	default:
		// a full buffer means the player is mashing keys faster than the
		// loop polls; dropping is safe
	}
}
