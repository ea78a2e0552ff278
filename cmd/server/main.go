// Package main implements the entry point for the periodic API server,
// which serves the element and isotope catalog over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// errDatabaseRequired is returned when a database operation is requested
// without a configured database URL.
var errDatabaseRequired = errors.New("database.url must be set for this operation")

// options holds the command-line flags.
type options struct {
	configDir string
	migrate   string
	seed      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("periodic server: %v", err)
	}
}

// parseFlags parses the server's command-line flags.
func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&opts.configDir, "config", ".", "directory containing config.yaml")
	fs.StringVar(&opts.migrate, "migrate", "", "run a migration command (up, down, reset, status, version) and exit")
	fs.BoolVar(&opts.seed, "seed", false, "migrate the database and upsert the built-in tables before serving")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// run wires configuration, logging, the optional database and the HTTP
// server, then blocks until ctx is cancelled.
func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadAppConfig(opts.configDir)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer closeDatabase(db, logger)
		return handleMigrations(ctx, db, opts.migrate, logger)
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		closeDatabase(db, logger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if opts.seed {
		if err := app.seed(ctx); err != nil {
			app.cleanup()
			return err
		}
	}

	return app.Run(ctx)
}
