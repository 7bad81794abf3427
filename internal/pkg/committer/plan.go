package committer

import (
	"context"

	"cloud.google.com/go/spanner"
)

// RowReader is the read side of a read-write transaction, as seen by guards.
type RowReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
}

// Guard is a precondition evaluated inside the commit transaction before the
// mutations are buffered. Returning an error aborts the commit.
type Guard func(ctx context.Context, r RowReader) error

// Plan collects the mutations of one usecase so they commit together.
type Plan struct {
	guards    []Guard
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends m. Nil mutations are ignored so repos can return nil for no-ops.
func (p *Plan) Add(ms ...*spanner.Mutation) {
	for _, m := range ms {
		if m == nil {
			continue
		}
		p.mutations = append(p.mutations, m)
	}
}

// Require adds a precondition checked at commit time.
func (p *Plan) Require(g Guard) {
	if g == nil {
		return
	}
	p.guards = append(p.guards, g)
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}

func (p *Plan) Guards() []Guard {
	return p.guards
}

// Check runs every guard against r, stopping at the first failure.
func (p *Plan) Check(ctx context.Context, r RowReader) error {
	for _, g := range p.guards {
		if err := g(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
