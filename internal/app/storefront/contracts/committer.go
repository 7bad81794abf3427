package contracts

import (
	"context"

	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

// Committer applies every mutation of a plan atomically, after its guards pass.
// Usecases build plans; only the committer talks to the database driver.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
