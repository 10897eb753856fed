package admin

import (
	"context"
	"fmt"

	"github.com/alexanderramin/campusadmin/internal/domain"
	"go.uber.org/zap"
)

// CatalogService reads and extends the college catalog. Catalog entries
// are never edited or deleted.
type CatalogService interface {
	List(ctx context.Context) ([]domain.CollegeProgram, error)
	// Add creates a catalog entry with a single program and returns the
	// entry to patch into the local catalog.
	Add(ctx context.Context, college, program string) (domain.CollegeProgram, error)
}

// RemoteCatalog is the CatalogService backed by the admin REST API.
type RemoteCatalog struct {
	t Transport
}

func NewRemoteCatalog(t Transport) *RemoteCatalog {
	return &RemoteCatalog{t: t}
}

func (c *RemoteCatalog) List(ctx context.Context) ([]domain.CollegeProgram, error) {
	var out []domain.CollegeProgram
	if err := c.t.List(ctx, CatalogPath, &out); err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	return out, nil
}

// Add posts {college, program: [program]}. When the server's reply does
// not carry a college, the submitted entry is returned instead.
func (c *RemoteCatalog) Add(ctx context.Context, college, program string) (domain.CollegeProgram, error) {
	body := domain.CollegeProgram{College: college, Program: []string{program}}
	var created domain.CollegeProgram
	if err := c.t.Create(ctx, CatalogPath, body, &created); err != nil {
		return domain.CollegeProgram{}, fmt.Errorf("adding %s: %w", college, err)
	}
	if created.College == "" {
		return body, nil
	}
	return created, nil
}

// journaledCatalog records every Add attempt in the activity journal.
type journaledCatalog struct {
	CatalogService
	recorder Recorder
	logger   *zap.Logger
}

// WithJournal wraps inner so that adds are journaled and failures logged.
func WithJournal(inner CatalogService, recorder Recorder, logger *zap.Logger) CatalogService {
	if recorder == nil {
		recorder = NoopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &journaledCatalog{
		CatalogService: inner,
		recorder:       recorder,
		logger:         logger.With(zap.String("kind", "college")),
	}
}

func (c *journaledCatalog) Add(ctx context.Context, college, program string) (domain.CollegeProgram, error) {
	entry, err := c.CatalogService.Add(ctx, college, program)

	je := domain.JournalEntry{
		Op:       domain.OpAddCollege,
		Kind:     "college",
		College:  college,
		Program:  program,
		RecordID: entry.ID,
		Summary:  fmt.Sprintf("%s: %s", college, program),
		OK:       err == nil,
	}
	if err != nil {
		je.Error = err.Error()
		c.logger.Warn("add college failed", zap.String("college", college), zap.Error(err))
	}
	c.recorder.Record(ctx, je)
	return entry, err
}

// CatalogResult is the outcome of an add-college request run off the
// event loop.
type CatalogResult struct {
	Pair  domain.Pair
	Entry domain.CollegeProgram
	Err   error
}

// ApplyCatalogAdd patches s with a successful add-college result.
func ApplyCatalogAdd(s *Selector, r CatalogResult) Outcome {
	out := Outcome{Op: domain.OpAddCollege, Kind: "college", Pair: r.Pair, RecordID: r.Entry.ID}
	if r.Err != nil {
		out.Err = r.Err
		return out
	}
	s.AddEntry(r.Entry)
	return out
}
