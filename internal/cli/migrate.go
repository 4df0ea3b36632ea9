package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"qliz/internal/config"
	pgmigrations "qliz/internal/infra/postgres/migrations"
)

// newMigrateCmd applies the question-bank schema to the Postgres bank source.
func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <config-file>",
		Short: "Apply question-bank database migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), args[0])
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Quiz.BankSource == "" {
		return fmt.Errorf("bank_source not configured")
	}

	dsn, _ := splitBankSource(cfg.Quiz.BankSource)
	return MigrateDSN(ctx, dsn)
}

// MigrateDSN runs the bun migrations against the given Postgres DSN. Shared
// with the integration tests.
func MigrateDSN(ctx context.Context, dsn string) error {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}
	log.Printf("migrations applied")
	return nil
}
