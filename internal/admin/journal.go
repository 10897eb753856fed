package admin

import (
	"context"
	"time"

	"github.com/alexanderramin/campusadmin/internal/db"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/alexanderramin/campusadmin/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder appends mutation attempts to the activity journal. Record never
// fails from the caller's point of view.
type Recorder interface {
	Record(ctx context.Context, e domain.JournalEntry)
}

type NoopRecorder struct{}

func (NoopRecorder) Record(context.Context, domain.JournalEntry) {}

// DefaultJournalKeep bounds the journal size.
const DefaultJournalKeep = 1000

// JournalRecorder writes entries to SQLite and prunes old ones in the same
// transaction.
type JournalRecorder struct {
	uow     db.UnitOfWork
	baseURL string
	keep    int
	logger  *zap.Logger
	now     func() time.Time
}

func NewJournalRecorder(uow db.UnitOfWork, baseURL string, keep int, logger *zap.Logger) *JournalRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if keep <= 0 {
		keep = DefaultJournalKeep
	}
	return &JournalRecorder{
		uow:     uow,
		baseURL: baseURL,
		keep:    keep,
		logger:  logger,
		now:     time.Now,
	}
}

func (r *JournalRecorder) Record(ctx context.Context, e domain.JournalEntry) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.At.IsZero() {
		e.At = r.now().UTC()
	}
	if e.BaseURL == "" {
		e.BaseURL = r.baseURL
	}

	err := r.uow.WithinTx(context.WithoutCancel(ctx), func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteJournalRepo(tx)
		if err := repo.Append(ctx, &e); err != nil {
			return err
		}
		_, err := repo.Prune(ctx, r.keep)
		return err
	})
	if err != nil {
		r.logger.Warn("journal write failed",
			zap.String("op", string(e.Op)),
			zap.String("kind", e.Kind),
			zap.Error(err))
	}
}
