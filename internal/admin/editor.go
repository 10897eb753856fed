package admin

import (
	"context"
	"slices"

	"github.com/alexanderramin/campusadmin/internal/domain"
	"go.uber.org/zap"
)

// State is the lifecycle of an editor's list.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	// StateFailed means the last fetch for the current selection failed.
	// The list is empty so rows from a previous pair are never shown.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Ticket identifies one selection generation. Every request an editor
// issues carries the ticket that was current when it started; a result is
// applied to the list only if its ticket is still current.
type Ticket struct {
	Pair domain.Pair
	Gen  uint64
}

type FetchResult[T domain.Record] struct {
	Ticket Ticket
	Items  []T
	Err    error
}

type AddResult[T domain.Record] struct {
	Ticket Ticket
	Item   T
	Err    error
}

type DeleteResult struct {
	Ticket Ticket
	ID     domain.ID
	Err    error
}

// Editor holds the filtered list of one resource kind for the active pair.
//
// Select and the Apply methods mutate state and must only be called from
// one goroutine (the bubbletea Update loop). Fetch, Submit and Remove only
// read the immutable kind, store and recorder and are safe to run from
// tea.Cmd goroutines.
type Editor[T domain.Record] struct {
	kind     Kind[T]
	store    Store[T]
	recorder Recorder
	logger   *zap.Logger

	ticket Ticket
	state  State
	items  []T
}

// NewEditor creates an idle editor. A nil recorder or logger is replaced
// by a no-op.
func NewEditor[T domain.Record](kind Kind[T], store Store[T], recorder Recorder, logger *zap.Logger) *Editor[T] {
	if recorder == nil {
		recorder = NoopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor[T]{
		kind:     kind,
		store:    store,
		recorder: recorder,
		logger:   logger.With(zap.String("kind", kind.Name)),
	}
}

func (e *Editor[T]) Kind() Kind[T]     { return e.kind }
func (e *Editor[T]) State() State      { return e.state }
func (e *Editor[T]) Ticket() Ticket    { return e.ticket }
func (e *Editor[T]) Pair() domain.Pair { return e.ticket.Pair }
func (e *Editor[T]) Len() int          { return len(e.items) }

// Items returns a copy of the current list.
func (e *Editor[T]) Items() []T { return slices.Clone(e.items) }

// Select starts a new generation for p and returns the ticket the caller
// must pass to Fetch. Results of older generations are discarded.
func (e *Editor[T]) Select(p domain.Pair) Ticket {
	e.ticket = Ticket{Pair: p, Gen: e.ticket.Gen + 1}
	e.state = StateLoading
	return e.ticket
}

// Fetch loads the full collection and filters it to t.Pair.
func (e *Editor[T]) Fetch(ctx context.Context, t Ticket) FetchResult[T] {
	all, err := e.store.List(ctx)
	if err != nil {
		return FetchResult[T]{Ticket: t, Err: err}
	}
	return FetchResult[T]{Ticket: t, Items: domain.FilterByPair(all, t.Pair)}
}

// ApplyFetch replaces the list with r if r belongs to the current generation.
func (e *Editor[T]) ApplyFetch(r FetchResult[T]) Outcome {
	out := Outcome{Op: domain.OpFetch, Kind: e.kind.Name, Pair: r.Ticket.Pair}
	if r.Ticket != e.ticket {
		out.Stale = true
		e.logger.Debug("discarding stale fetch",
			zap.Stringer("pair", r.Ticket.Pair),
			zap.Uint64("gen", r.Ticket.Gen),
			zap.Uint64("current_gen", e.ticket.Gen))
		return out
	}
	if r.Err != nil {
		out.Err = r.Err
		e.state = StateFailed
		e.items = nil
		e.logger.Warn("fetch failed", zap.Stringer("pair", r.Ticket.Pair), zap.Error(r.Err))
		return out
	}
	e.items = r.Items
	e.state = StateLoaded
	return out
}

// Submit builds a create body from v and posts it. Build errors, such as
// an invalid task date, fail before any request is made.
func (e *Editor[T]) Submit(ctx context.Context, t Ticket, v Values) AddResult[T] {
	body, err := e.kind.Build(t.Pair, v)
	if err != nil {
		e.record(ctx, domain.OpAdd, t.Pair, "", e.kind.summarize(v), err)
		return AddResult[T]{Ticket: t, Err: err}
	}
	created, err := e.store.Create(ctx, body)
	summary := e.kind.summarize(v)
	if err == nil {
		summary = e.kind.Describe(created)
	}
	e.record(ctx, domain.OpAdd, t.Pair, created.RecordID(), summary, err)
	return AddResult[T]{Ticket: t, Item: created, Err: err}
}

// ApplyAdd appends the created record. A failed add leaves the list as is.
func (e *Editor[T]) ApplyAdd(r AddResult[T]) Outcome {
	out := Outcome{Op: domain.OpAdd, Kind: e.kind.Name, Pair: r.Ticket.Pair}
	if r.Err != nil {
		out.Err = r.Err
		e.logger.Warn("add failed", zap.Stringer("pair", r.Ticket.Pair), zap.Error(r.Err))
		return out
	}
	out.RecordID = r.Item.RecordID()
	if r.Ticket != e.ticket {
		out.Stale = true
		e.logger.Info("add completed for a previous selection", zap.Stringer("pair", r.Ticket.Pair))
		return out
	}
	e.items = append(slices.Clone(e.items), r.Item)
	e.state = StateLoaded
	return out
}

// Remove deletes item on the server.
func (e *Editor[T]) Remove(ctx context.Context, t Ticket, item T) DeleteResult {
	return e.remove(ctx, t, item.RecordID(), e.kind.Describe(item))
}

// RemoveByID deletes a record the caller only knows by id.
func (e *Editor[T]) RemoveByID(ctx context.Context, t Ticket, id domain.ID) DeleteResult {
	return e.remove(ctx, t, id, "")
}

func (e *Editor[T]) remove(ctx context.Context, t Ticket, id domain.ID, summary string) DeleteResult {
	err := e.store.Delete(ctx, id)
	e.record(ctx, domain.OpDelete, t.Pair, id, summary, err)
	return DeleteResult{Ticket: t, ID: id, Err: err}
}

// ApplyDelete drops every record with the deleted id.
func (e *Editor[T]) ApplyDelete(r DeleteResult) Outcome {
	out := Outcome{Op: domain.OpDelete, Kind: e.kind.Name, Pair: r.Ticket.Pair, RecordID: r.ID}
	if r.Err != nil {
		out.Err = r.Err
		e.logger.Warn("delete failed", zap.String("id", string(r.ID)), zap.Error(r.Err))
		return out
	}
	if r.Ticket != e.ticket {
		out.Stale = true
		e.logger.Info("delete completed for a previous selection", zap.String("id", string(r.ID)))
		return out
	}
	e.items = slices.DeleteFunc(slices.Clone(e.items), func(it T) bool {
		return it.RecordID() == r.ID
	})
	return out
}

func (e *Editor[T]) record(ctx context.Context, op domain.Op, p domain.Pair, id domain.ID, summary string, err error) {
	entry := domain.JournalEntry{
		Op:       op,
		Kind:     e.kind.Name,
		College:  p.College,
		Program:  p.Program,
		RecordID: id,
		Summary:  summary,
		OK:       err == nil,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	e.recorder.Record(ctx, entry)
}
