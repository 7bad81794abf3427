package committer

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
)

var errNilClient = errors.New("committer: spanner client is nil")

// Adapter applies plans in a single Spanner read-write transaction.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply evaluates the plan's guards and buffers its mutations in one
// transaction. Either every mutation commits or none does.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	if a.client == nil {
		return errNilClient
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		if err := plan.Check(ctx, tx); err != nil {
			return err
		}
		return tx.BufferWrite(plan.Mutations())
	})
	return err
}
