package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"qliz/internal/config"
	"qliz/internal/domain"
	"qliz/internal/game"
	"qliz/internal/infra/jsonfile"
	"qliz/internal/infra/memory"
	pgloader "qliz/internal/infra/postgres"
	redisstore "qliz/internal/infra/redis"
	"qliz/internal/term"
)

const bankCacheTTL = 10 * time.Minute

func runGame(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	bank, err := loadBank(ctx, cfg)
	if err != nil {
		return err
	}

	scores, err := scoreboardStore(cfg)
	if err != nil {
		return err
	}
	stats := jsonfile.NewStatsStore(cfg.Quiz.StatsPath)

	screen := term.NewScreen()
	screen.ShowTitle(cfg.Quiz.Title, cfg.Quiz.Description)

	player, err := screen.PromptPlayer()
	if err != nil {
		return err
	}

	if err := screen.EnterGame(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	session := game.NewSession(bank, screen, cfg.Quiz.QuestionsPerGame, cfg.QuestionTimeout())
	result := session.Run(player)
	screen.LeaveGame()

	// Board state before this run decides the high-score banner.
	before, loadErr := scores.Load(ctx)
	if loadErr != nil {
		log.Printf("scoreboard unavailable for high-score check: %v", loadErr)
	}
	highScore := loadErr == nil && game.IsHighScore(before.Scores, domain.EntryFromResult(result))

	recorder := game.NewRecorder(scores, stats, cfg.Quiz.Title, cfg.Quiz.Description)
	if err := recorder.RecordSession(ctx, result); err != nil {
		// Surfaced, never rolled back: the displayed result stands.
		log.Printf("failed to record session: %v", err)
	}

	totalQuestions := cfg.Quiz.QuestionsPerGame
	if bank.Len() < totalQuestions {
		totalQuestions = bank.Len()
	}
	screen.ShowSummary(result, totalQuestions, highScore)
	return nil
}

// loadBank builds the question bank from the inline config list, or from
// Postgres when quiz_metadata.bank_source is set.
func loadBank(ctx context.Context, cfg config.Config) (*game.Bank, error) {
	if cfg.Quiz.BankSource == "" {
		return game.NewBank(cfg.Questions), nil
	}

	dsn, bankID := splitBankSource(cfg.Quiz.BankSource)
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect bank source: %w", err)
	}

	repo := memory.NewBankRepository(pgloader.NewBankLoader(pool), bankCacheTTL)
	questions, err := repo.LoadBank(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if err := config.ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return game.NewBank(questions), nil
}

// splitBankSource separates "postgres://...#bank-id" into DSN and bank ID.
// The ID defaults to "default" when the fragment is absent.
func splitBankSource(source string) (dsn, bankID string) {
	if dsn, id, ok := strings.Cut(source, "#"); ok && id != "" {
		return dsn, id
	}
	return source, "default"
}

// scoreboardStore picks the backend from the configured path: a redis:// URL
// selects the shared Redis store, anything else is a flat file.
func scoreboardStore(cfg config.Config) (game.ScoreboardStore, error) {
	path := cfg.Quiz.ScoreboardPath
	if !strings.HasPrefix(path, "redis://") {
		return jsonfile.NewScoreboardStore(path), nil
	}

	opts, err := goredis.ParseURL(path)
	if err != nil {
		return nil, fmt.Errorf("parse scoreboard redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	return redisstore.NewScoreboardStore(client, ""), nil
}
