// Command seeder creates the default item types (domains, certificates,
// licenses, ...) that are missing from the database.
// It is intended to be run once per environment, not as part of the server.
//
// Flags:
//
//	--dry-run        report what would be created without writing
//	--seeder-config  path to a YAML file with an item_types list
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres"
	"github.com/heartmarshall/renewal-manager/internal/adapter/postgres/itemtype"
	"github.com/heartmarshall/renewal-manager/internal/app"
	"github.com/heartmarshall/renewal-manager/internal/app/seeder"
	"github.com/heartmarshall/renewal-manager/internal/config"
)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "report what would be created without writing")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, appCfg.Database.DSN, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	res, err := seeder.NewPipeline(logger, itemtype.New(pool), *seederCfg).Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
		slog.Bool("dry_run", seederCfg.DryRun),
	)
	if res.Errors > 0 {
		os.Exit(1)
	}
}
