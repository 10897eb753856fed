package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/campusadmin/internal/domain"
)

// ErrNoRecordID is returned when the service acknowledges a create but the
// reply carries no id; such a record could never be deleted.
var ErrNoRecordID = errors.New("created record has no id")

// Transport is the subset of *api.Client the stores need.
type Transport interface {
	List(ctx context.Context, path string, out any) error
	Create(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path, id string) error
}

// Store is a remote collection of one resource kind. Implementations must
// be safe for concurrent use; editors call them from tea.Cmd goroutines.
type Store[T domain.Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, body T) (T, error)
	Delete(ctx context.Context, id domain.ID) error
}

// RemoteStore is a Store backed by the admin REST API.
type RemoteStore[T domain.Record] struct {
	t    Transport
	path string
}

// NewRemoteStore creates a store for the collection at kind.Path.
func NewRemoteStore[T domain.Record](t Transport, kind Kind[T]) *RemoteStore[T] {
	return &RemoteStore[T]{t: t, path: kind.Path}
}

func (s *RemoteStore[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := s.t.List(ctx, s.path, &items); err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.path, err)
	}
	return items, nil
}

func (s *RemoteStore[T]) Create(ctx context.Context, body T) (T, error) {
	var created T
	if err := s.t.Create(ctx, s.path, body, &created); err != nil {
		var zero T
		return zero, fmt.Errorf("creating in %s: %w", s.path, err)
	}
	if created.RecordID() == "" {
		var zero T
		return zero, fmt.Errorf("creating in %s: %w", s.path, ErrNoRecordID)
	}
	return created, nil
}

func (s *RemoteStore[T]) Delete(ctx context.Context, id domain.ID) error {
	if err := s.t.Delete(ctx, s.path, string(id)); err != nil {
		return fmt.Errorf("deleting %s from %s: %w", id, s.path, err)
	}
	return nil
}

// Stores bundles one store per pair-scoped kind.
type Stores struct {
	Prerequisites Store[domain.Prerequisite]
	Tasks         Store[domain.Task]
	Notes         Store[domain.Note]
	Resources     Store[domain.Resource]
}

// NewRemoteStores wires every kind to the same transport.
func NewRemoteStores(t Transport) Stores {
	return Stores{
		Prerequisites: NewRemoteStore(t, PrerequisiteKind),
		Tasks:         NewRemoteStore(t, TaskKind),
		Notes:         NewRemoteStore(t, NoteKind),
		Resources:     NewRemoteStore(t, ResourceKind),
	}
}
