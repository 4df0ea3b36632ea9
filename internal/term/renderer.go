package term

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"qliz/internal/domain"
	"qliz/internal/game"
)

const timerBarWidth = 40

// Screen implements game.Terminal on a real ANSI terminal. All layout,
// colors, and key decoding live here; the core only sees frames and events.
type Screen struct {
	in     *os.File
	out    io.Writer
	events chan game.Event
	stop   chan struct{}
	state  *term.State

	header    *color.Color
	accent    *color.Color
	good      *color.Color
	bad       *color.Color
	highlight *color.Color
}

func NewScreen() *Screen {
	return &Screen{
		in:        os.Stdin,
		out:       color.Output,
		events:    make(chan game.Event, 8),
		header:    color.New(color.FgYellow, color.Bold),
		accent:    color.New(color.FgCyan),
		good:      color.New(color.FgGreen, color.Bold),
		bad:       color.New(color.FgRed, color.Bold),
		highlight: color.New(color.FgMagenta, color.Bold, color.ReverseVideo),
	}
}

// RenderQuestionFrame redraws the whole question screen for one poll tick.
// Raw mode is active here, so lines end with \r\n.
func (s *Screen) RenderQuestionFrame(f game.Frame) {
	s.clear()

	s.header.Fprintf(s.out, "QUESTION %d/%d", f.Number, f.Total)
	s.accent.Fprintf(s.out, "%40s\r\n\r\n", fmt.Sprintf("SCORE: %d/%d", f.Score, f.Total))

	s.drawTimerBar(f.ElapsedFraction, f.Remaining)

	fmt.Fprintf(s.out, "\r\n%s\r\n\r\n", f.Question.Text)

	for i, option := range f.Question.Options {
		line := fmt.Sprintf("[%d] %s", i+1, option)
		if i == f.Highlighted {
			s.highlight.Fprintf(s.out, " %s \r\n", line)
		} else {
			fmt.Fprintf(s.out, " %s \r\n", line)
		}
	}

	s.accent.Fprint(s.out, "\r\nup/down: navigate | enter: select | 1-6 or a-f: quick select\r\n")
}

func (s *Screen) drawTimerBar(elapsedFraction float64, remaining time.Duration) {
	left := 1 - elapsedFraction
	if left < 0 {
		left = 0
	}
	filled := int(timerBarWidth * left)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", timerBarWidth-filled)

	c := s.good
	switch {
	case left <= 0.25:
		c = s.bad
	case left <= 0.5:
		c = s.header
	}
	c.Fprintf(s.out, "%s %ds\r\n", bar, int(remaining.Seconds()))
}

// RenderOutcome shows the verdict for two seconds before the next question.
func (s *Screen) RenderOutcome(v game.Verdict) {
	s.clear()

	if v.Correct {
		s.good.Fprint(s.out, "\r\n*** CORRECT! ***\r\n")
	} else if v.TimedOut {
		s.bad.Fprint(s.out, "\r\n*** TIME'S UP! ***\r\n")
	} else {
		s.bad.Fprint(s.out, "\r\n*** WRONG! ***\r\n")
	}

	if !v.Correct && v.CorrectAnswer != "" {
		s.header.Fprintf(s.out, "\r\nCorrect answer: %s\r\n", v.CorrectAnswer)
	}
	if v.Explanation != "" {
		fmt.Fprintf(s.out, "\r\n%s\r\n", v.Explanation)
	}

	time.Sleep(2 * time.Second)
}

// ShowTitle prints the configured quiz branding before the game starts.
func (s *Screen) ShowTitle(title, description string) {
	s.accent.Fprintln(s.out, "━━━ QLIZ ━━━")
	s.header.Fprintf(s.out, "%s\n", strings.ToUpper(title))
	if description != "" {
		fmt.Fprintf(s.out, "[ %s ]\n", description)
	}
	fmt.Fprintln(s.out)
}

// ShowSummary prints the game-over screen, including the high-score banner.
func (s *Screen) ShowSummary(result domain.SessionResult, totalQuestions int, highScore bool) {
	s.clear()
	s.bad.Fprintln(s.out, "GAME OVER")
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "PLAYER: %s\n", result.Player.Name)
	s.header.Fprintf(s.out, "SCORE:  %d/%d\n", result.Score, totalQuestions)
	s.accent.Fprintf(s.out, "TIME:   %.1fs\n", result.TotalTime)
	if highScore {
		s.header.Fprintln(s.out, "\n*** NEW HIGH SCORE! ***")
	}
}

// ShowRankings prints the leaderboard table. withEmail switches between the
// high-scores view and the top-players-with-emails view.
func (s *Screen) ShowRankings(quizTitle string, entries []domain.ScoreboardEntry, withEmail bool) {
	s.header.Fprintln(s.out, "HIGH SCORES")
	if quizTitle != "" {
		s.accent.Fprintln(s.out, quizTitle)
	}
	fmt.Fprintln(s.out)

	if len(entries) == 0 {
		s.bad.Fprintln(s.out, "NO SCORES YET - BE THE FIRST!")
		return
	}

	if withEmail {
		fmt.Fprintf(s.out, "%-4s %-18s %-30s %-8s %-10s\n", "#", "NAME", "EMAIL", "SCORE", "TIME")
	} else {
		fmt.Fprintf(s.out, "%-4s %-20s %-10s %-10s\n", "#", "NAME", "SCORE", "TIME")
	}

	for i, entry := range entries {
		c := s.rankColor(i + 1)
		if withEmail {
			c.Fprintf(s.out, "%-4s %-18s %-30s %-8d %-10s\n",
				fmt.Sprintf("%d.", i+1), clip(entry.Name, 16), clip(entry.Email, 28),
				entry.Score, fmt.Sprintf("%.1fs", entry.TotalTime))
		} else {
			c.Fprintf(s.out, "%-4s %-20s %-10d %-10s\n",
				fmt.Sprintf("%d.", i+1), clip(entry.Name, 18),
				entry.Score, fmt.Sprintf("%.1fs", entry.TotalTime))
		}
	}
}

// ShowLucky prints the random-player draw.
func (s *Screen) ShowLucky(total int, entry domain.ScoreboardEntry, ok bool) {
	s.header.Fprintln(s.out, "LUCKY WINNER")
	if !ok {
		s.bad.Fprintln(s.out, "NO PLAYERS YET - BE THE FIRST!")
		return
	}
	fmt.Fprintf(s.out, "TOTAL PLAYERS: %d\n\n", total)
	s.good.Fprintf(s.out, "NAME:  %s\n", entry.Name)
	fmt.Fprintf(s.out, "EMAIL: %s\n", entry.Email)
}

func (s *Screen) rankColor(rank int) *color.Color {
	switch rank {
	case 1:
		return s.header
	case 2:
		return color.New(color.FgWhite, color.Bold)
	case 3:
		return color.New(color.FgMagenta)
	default:
		return s.accent
	}
}

func (s *Screen) clear() {
	fmt.Fprint(s.out, "\x1b[2J\x1b[H")
}

func clip(v string, max int) string {
	if len(v) <= max {
		return v
	}
	return v[:max]
}
