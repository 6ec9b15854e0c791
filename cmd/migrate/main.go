package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/lifecycle"
	logs "portfolio/internal/infra/log"
	"portfolio/internal/infra/persistence/migrations"
	"portfolio/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:     apply every pending migration
// - down:   roll back the latest migration
// - status: list migrations and whether they are applied

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "Maximum duration of the command")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	err := run(ctx, flag.Arg(0))
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	// Start pings the database; Stop closes the pool.
	if err := app.Start(ctx); err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	migrator, err := migrations.NewMigrator(sqlDB)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		versions, err := migrator.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("Migrations applied", slog.Any("versions", versions))

	case "down":
		version, err := migrator.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("Migration rolled back", slog.Int64("version", version))

	case "status":
		statuses, err := migrator.Status(ctx)
		if err != nil {
			return err
		}
		for _, status := range statuses {
			state := "pending"
			if status.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", status.Version, state, status.Path)
		}

	default:
		printUsage()

		return errors.Errorf("unknown command: %s", command)
	}

	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate [-timeout 5m] <up|down|status>")
}
