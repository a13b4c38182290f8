// Command formsctl runs one-off maintenance tasks against the forms store.
//
//	formsctl migrate-legacy   move legacy forms onto question rows
//	formsctl seed <file>      load forms from YAML into an empty store
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/linskybing/forms-platform/internal/application"
	"github.com/linskybing/forms-platform/internal/config"
	"github.com/linskybing/forms-platform/internal/config/db"
	"github.com/linskybing/forms-platform/internal/migrations"
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/pkg/logger"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: formsctl migrate-legacy | seed <file>")
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
	}

	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	gormDB, err := db.Open(ctx, cfg.FormsDB, log)
	if err != nil {
		log.Fatal("Failed to open forms database", "error", err)
	}
	defer db.Close(gormDB, log)

	if err := migrations.Forms(gormDB); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}
	repos := repository.NewRepositories(gormDB)
	repos.SetAcquireTimeout(cfg.FormsDB.AcquireTimeout)
	svc := application.NewFormService(repos, log)

	switch flag.Arg(0) {
	case "migrate-legacy":
		migrated, failed, err := svc.MigrateLegacy(ctx)
		if err != nil {
			log.Fatal("Legacy migration failed", "error", err)
		}
		fmt.Printf("[OK] migrated %d forms, %d left in legacy layout %v\n", migrated, len(failed), failed)
	case "seed":
		if flag.NArg() < 2 {
			usage()
		}
		n, err := svc.SeedForms(ctx, flag.Arg(1))
		if err != nil {
			log.Fatal("Seeding failed", "seeded", n, "error", err)
		}
		fmt.Printf("[OK] seeded %d forms\n", n)
	default:
		usage()
	}
}
