package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/api"
	"github.com/alexanderramin/campusadmin/internal/cli"
	"github.com/alexanderramin/campusadmin/internal/config"
	"github.com/alexanderramin/campusadmin/internal/db"
	"github.com/alexanderramin/campusadmin/internal/logging"
	"github.com/alexanderramin/campusadmin/internal/repository"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	err := cli.NewRootCmd(app, build).Execute()
	app.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// build wires app against the remote API and the local journal.
func build(app *cli.App, cfg config.Config, verbose bool) error {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Verbose: verbose})
	if err != nil {
		return err
	}
	app.OnClose(func() { _ = logger.Sync() })

	registry := prometheus.NewRegistry()
	metrics, err := api.NewMetricsObserver(registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	if cfg.MetricsFile != "" {
		app.OnClose(func() {
			if err := api.WriteTextfile(cfg.MetricsFile, registry); err != nil {
				logger.Warn("writing metrics textfile failed", zap.String("path", cfg.MetricsFile), zap.Error(err))
			}
		})
	}

	client := api.NewClient(api.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout(),
	}, api.MultiObserver{api.NewLogObserver(logger), metrics})
	app.OnClose(client.Close)

	var recorder admin.Recorder = admin.NoopRecorder{}
	if cfg.JournalPath != "" {
		database, err := db.OpenDB(cfg.JournalPath)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		app.OnClose(func() { _ = database.Close() })

		recorder = admin.NewJournalRecorder(db.NewSQLiteUnitOfWork(database), client.BaseURL(), admin.DefaultJournalKeep, logger)
		app.Journal = repository.NewSQLiteJournalRepo(database)
	}

	app.Config = cfg
	app.Logger = logger
	app.Recorder = recorder
	app.Catalog = admin.WithJournal(admin.NewRemoteCatalog(client), recorder, logger)
	app.Stores = admin.NewRemoteStores(client)
	app.Feedback = admin.NewRemoteFeedback(client)

	logger.Debug("wired", zap.String("base_url", client.BaseURL()), zap.Bool("journal", app.Journal != nil))
	return nil
}
