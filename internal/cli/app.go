package cli

import (
	"context"

	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/config"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"go.uber.org/zap"
)

// JournalReader reads the local activity journal.
type JournalReader interface {
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.JournalEntry, error)
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
}

// App holds the services CLI commands and TUI views run against. main
// fills it through the root command's Builder once flags are parsed.
type App struct {
	Config   config.Config
	Logger   *zap.Logger
	Catalog  admin.CatalogService
	Stores   admin.Stores
	Feedback admin.FeedbackService
	Recorder admin.Recorder
	Journal  JournalReader

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command starts the TUI only when it returns true.
	IsInteractive func() bool

	closers []func()
}

// OnClose registers fn to run when the App is closed. Closers run in
// reverse registration order.
func (a *App) OnClose(fn func()) {
	a.closers = append(a.closers, fn)
}

// Close releases everything registered with OnClose.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *App) recorder() admin.Recorder {
	if a.Recorder == nil {
		return admin.NoopRecorder{}
	}
	return a.Recorder
}
