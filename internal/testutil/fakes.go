package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/alexanderramin/campusadmin/internal/domain"
)

// FakeStore is an in-memory remote collection. The zero value is not
// usable; create one with NewFakeStore.
type FakeStore[T domain.Record] struct {
	mu     sync.Mutex
	items  []T
	withID func(T, domain.ID) T

	ListErr   error
	CreateErr error
	DeleteErr error

	Lists   int
	Created []T
	Deleted []domain.ID
}

// NewFakeStore creates a store seeded with items. withID stamps the server
// id onto created records.
func NewFakeStore[T domain.Record](withID func(T, domain.ID) T, items ...T) *FakeStore[T] {
	return &FakeStore[T]{items: slices.Clone(items), withID: withID}
}

func (s *FakeStore[T]) List(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lists++
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return slices.Clone(s.items), nil
}

func (s *FakeStore[T]) Create(ctx context.Context, body T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Created = append(s.Created, body)
	if s.CreateErr != nil {
		var zero T
		return zero, s.CreateErr
	}
	created := s.withID(body, NextID())
	s.items = append(s.items, created)
	return created, nil
}

func (s *FakeStore[T]) Delete(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, id)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.items = slices.DeleteFunc(s.items, func(it T) bool { return it.RecordID() == id })
	return nil
}

// All returns the remote collection as the server currently holds it.
func (s *FakeStore[T]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func PrerequisiteWithID(p domain.Prerequisite, id domain.ID) domain.Prerequisite {
	p.ID = id
	return p
}

func TaskWithID(t domain.Task, id domain.ID) domain.Task {
	t.ID = id
	return t
}

func NoteWithID(n domain.Note, id domain.ID) domain.Note {
	n.ID = id
	return n
}

func ResourceWithID(r domain.Resource, id domain.ID) domain.Resource {
	r.ID = id
	return r
}

// RecordingRecorder keeps journal entries in memory.
type RecordingRecorder struct {
	mu      sync.Mutex
	entries []domain.JournalEntry
}

func (r *RecordingRecorder) Record(_ context.Context, e domain.JournalEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *RecordingRecorder) Entries() []domain.JournalEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// FakeCatalog is an in-memory CatalogService.
type FakeCatalog struct {
	mu      sync.Mutex
	entries []domain.CollegeProgram

	ListErr error
	AddErr  error
}

func NewFakeCatalog(entries ...domain.CollegeProgram) *FakeCatalog {
	return &FakeCatalog{entries: slices.Clone(entries)}
}

func (c *FakeCatalog) List(ctx context.Context) ([]domain.CollegeProgram, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	return slices.Clone(c.entries), nil
}

func (c *FakeCatalog) Add(ctx context.Context, college, program string) (domain.CollegeProgram, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.AddErr != nil {
		return domain.CollegeProgram{}, c.AddErr
	}
	e := domain.CollegeProgram{ID: NextID(), College: college, Program: []string{program}}
	c.entries = append(c.entries, e)
	return e, nil
}

// FakeFeedback is an in-memory FeedbackService that counts fetches.
type FakeFeedback struct {
	mu      sync.Mutex
	entries []domain.Feedback
	Lists   int
	ListErr error
}

func NewFakeFeedback(entries ...domain.Feedback) *FakeFeedback {
	return &FakeFeedback{entries: slices.Clone(entries)}
}

func (f *FakeFeedback) List(ctx context.Context) ([]domain.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Lists++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return slices.Clone(f.entries), nil
}

// FetchCount reports how many times List was called.
func (f *FakeFeedback) FetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Lists
}
