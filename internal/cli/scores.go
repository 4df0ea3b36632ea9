package cli

import (
	"context"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"qliz/internal/config"
	"qliz/internal/domain"
	"qliz/internal/game"
	"qliz/internal/term"
)

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores <config-file>",
		Short: "Show the top-10 high scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showRankings(cmd.Context(), args[0], 10, false)
		},
	}
}

func newTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top <config-file>",
		Short: "Show the top-5 players with email addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showRankings(cmd.Context(), args[0], 5, true)
		},
	}
}

func newLuckyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lucky <config-file>",
		Short: "Draw one random player from the scoreboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return drawLucky(cmd.Context(), args[0])
		},
	}
}

func showRankings(ctx context.Context, configPath string, limit int, withEmail bool) error {
	sb, err := loadScoreboard(ctx, configPath)
	if err != nil {
		return err
	}
	term.NewScreen().ShowRankings(sb.QuizTitle, game.Rankings(sb, limit), withEmail)
	return nil
}

func drawLucky(ctx context.Context, configPath string) error {
	sb, err := loadScoreboard(ctx, configPath)
	if err != nil {
		return err
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	entry, ok := game.RandomEntry(rnd, sb.Scores)
	term.NewScreen().ShowLucky(len(sb.Scores), entry, ok)
	return nil
}

func loadScoreboard(ctx context.Context, configPath string) (domain.Scoreboard, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	store, err := scoreboardStore(cfg)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	return store.Load(ctx)
}
