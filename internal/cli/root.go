package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qliz <config-file>",
		Short: "Terminal multiple-choice trivia game",
		Long: `qliz loads a question bank from the given configuration file, runs a
timed quiz session for one player, records the result, and keeps a
leaderboard across runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(newScoresCmd())
	cmd.AddCommand(newTopCmd())
	cmd.AddCommand(newLuckyCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}
