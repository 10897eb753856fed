package admin

import (
	"context"

	"github.com/alexanderramin/campusadmin/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Overview is every pair-scoped collection for one pair.
type Overview struct {
	Pair          domain.Pair
	Prerequisites []domain.Prerequisite
	Tasks         []domain.Task
	Notes         []domain.Note
	Resources     []domain.Resource
}

// LoadOverview fetches the four collections concurrently and filters each
// to p. The first failure cancels the remaining requests.
func LoadOverview(ctx context.Context, s Stores, p domain.Pair) (*Overview, error) {
	ov := &Overview{Pair: p}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loadInto(ctx, s.Prerequisites, p, &ov.Prerequisites) })
	g.Go(func() error { return loadInto(ctx, s.Tasks, p, &ov.Tasks) })
	g.Go(func() error { return loadInto(ctx, s.Notes, p, &ov.Notes) })
	g.Go(func() error { return loadInto(ctx, s.Resources, p, &ov.Resources) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ov, nil
}

func loadInto[T domain.Record](ctx context.Context, s Store[T], p domain.Pair, dst *[]T) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}
	*dst = domain.FilterByPair(all, p)
	return nil
}
