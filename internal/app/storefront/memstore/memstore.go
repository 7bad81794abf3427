// Package memstore is an in-memory implementation of the storefront
// contracts. Mutations returned by its repos are opaque tokens; their effects
// become visible only when the plan holding them is applied, which mirrors the
// Spanner commit semantics closely enough for usecase tests.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/storefront/contracts"
	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

type productRow struct {
	id, ownerID, name, description, imageURL string
	price                                    domain.Cents
	createdAt, updatedAt                     time.Time
	seq                                      int
}

func (r productRow) product() *domain.Product {
	return domain.ReconstructProduct(r.id, r.ownerID, r.name, r.description, r.price, r.imageURL, r.createdAt, r.updatedAt)
}

func rowOf(p *domain.Product) productRow {
	return productRow{
		id:          p.ID(),
		ownerID:     p.OwnerID(),
		name:        p.Name(),
		description: p.Description(),
		imageURL:    p.ImageURL(),
		price:       p.Price(),
		createdAt:   p.CreatedAt(),
		updatedAt:   p.UpdatedAt(),
	}
}

type cartRow struct {
	entries   []domain.CartEntry
	updatedAt time.Time
}

type orderRow struct {
	order *domain.Order
	seq   int
}

// Store holds every table in memory. Safe for concurrent use.
type Store struct {
	mu sync.Mutex

	products map[string]productRow
	carts    map[string]cartRow
	orders   map[string]orderRow
	outbox   []contracts.OutboxEvent
	seq      int

	pending map[*spanner.Mutation]func()
	tokens  int

	artifacts map[string][]byte
	deleted   []string

	applyCalls int

	// Failure injection. Set before exercising the usecase.
	ApplyErr       error
	ReadErr        error
	DeleteFileErr  error
	ArtifactErr    error // returned by Create
	ArtifactWrite  error // returned by the artifact sink's Write
	ArtifactCommit error // returned by the artifact sink's Commit
}

func New() *Store {
	return &Store{
		products:  make(map[string]productRow),
		carts:     make(map[string]cartRow),
		orders:    make(map[string]orderRow),
		pending:   make(map[*spanner.Mutation]func()),
		artifacts: make(map[string][]byte),
	}
}

// token registers apply as the effect of a new opaque mutation.
func (s *Store) token(apply func()) *spanner.Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens++
	m := spanner.Delete("memstore", spanner.Key{int64(s.tokens)})
	s.pending[m] = apply
	return m
}

// Apply implements contracts.Committer.
func (s *Store) Apply(ctx context.Context, plan *commitplan.Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyCalls++

	discard := func() {
		for _, m := range plan.Mutations() {
			delete(s.pending, m)
		}
	}

	if s.ApplyErr != nil {
		discard()
		return s.ApplyErr
	}
	if err := plan.Check(ctx, nil); err != nil {
		discard()
		return err
	}
	for _, m := range plan.Mutations() {
		if apply, ok := s.pending[m]; ok {
			apply()
			delete(s.pending, m)
		}
	}
	return nil
}

// ApplyCalls reports how many plans reached Apply.
func (s *Store) ApplyCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyCalls
}

// Seeding helpers. They write directly, bypassing plans.

func (s *Store) PutProduct(p *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putProductLocked(rowOf(p))
}

func (s *Store) putProductLocked(r productRow) {
	if old, ok := s.products[r.id]; ok {
		r.seq = old.seq
	} else {
		s.seq++
		r.seq = s.seq
	}
	s.products[r.id] = r
}

func (s *Store) PutCart(c *domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[c.UserID()] = cartRow{entries: c.Entries(), updatedAt: c.UpdatedAt()}
}

func (s *Store) PutOrder(o *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.orders[o.ID()] = orderRow{order: domain.ReconstructOrder(o.ID(), o.UserID(), o.Items(), o.Total(), o.CreatedAt()), seq: s.seq}
}

// DeleteProductRow removes a product directly, leaving carts dangling.
func (s *Store) DeleteProductRow(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, productID)
}

// Inspection helpers.

func (s *Store) OutboxEvents() []contracts.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]contracts.OutboxEvent, len(s.outbox))
	copy(out, s.outbox)
	return out
}

func (s *Store) DeletedFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.deleted))
	copy(out, s.deleted)
	return out
}

func (s *Store) Artifact(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.artifacts[key]
	return b, ok
}

func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// Write side.

type productRepo struct{ s *Store }

// ProductRepo returns the contracts.ProductRepo view of the store.
func (s *Store) ProductRepo() contracts.ProductRepo { return productRepo{s} }

func (r productRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	row := rowOf(p)
	return r.s.token(func() { r.s.putProductLocked(row) })
}

func (r productRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if !p.Changes().HasChanges() {
		return nil
	}
	row := rowOf(p)
	return r.s.token(func() {
		if _, ok := r.s.products[row.id]; ok {
			r.s.putProductLocked(row)
		}
	})
}

func (r productRepo) DeleteMut(p *domain.Product) *spanner.Mutation {
	id := p.ID()
	return r.s.token(func() { delete(r.s.products, id) })
}

type cartRepo struct{ s *Store }

// CartRepo returns the contracts.CartRepo view of the store.
func (s *Store) CartRepo() contracts.CartRepo { return cartRepo{s} }

func (r cartRepo) SaveMut(c *domain.Cart) (*spanner.Mutation, error) {
	userID := c.UserID()
	row := cartRow{entries: c.Entries(), updatedAt: c.UpdatedAt()}
	return r.s.token(func() { r.s.carts[userID] = row }), nil
}

// UnchangedGuard runs under the store lock during Apply; it reads the map
// directly instead of the transaction reader.
func (r cartRepo) UnchangedGuard(c *domain.Cart) commitplan.Guard {
	userID := c.UserID()
	want := c.UpdatedAt()
	return func(context.Context, commitplan.RowReader) error {
		row, ok := r.s.carts[userID]
		if !ok {
			if want.IsZero() {
				return nil
			}
			return domain.ErrCartChanged
		}
		if !row.updatedAt.Equal(want) {
			return domain.ErrCartChanged
		}
		return nil
	}
}

type orderRepo struct{ s *Store }

// OrderRepo returns the contracts.OrderRepo view of the store.
func (s *Store) OrderRepo() contracts.OrderRepo { return orderRepo{s} }

func (r orderRepo) InsertMuts(o *domain.Order) []*spanner.Mutation {
	snapshot := domain.ReconstructOrder(o.ID(), o.UserID(), o.Items(), o.Total(), o.CreatedAt())
	return []*spanner.Mutation{r.s.token(func() {
		r.s.seq++
		r.s.orders[snapshot.ID()] = orderRow{order: snapshot, seq: r.s.seq}
	})}
}

type outboxRepo struct{ s *Store }

// OutboxRepo returns the contracts.OutboxRepo view of the store.
func (s *Store) OutboxRepo() contracts.OutboxRepo { return outboxRepo{s} }

func (r outboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	ev := *e
	return r.s.token(func() { r.s.outbox = append(r.s.outbox, ev) })
}

func (r outboxRepo) MarkProcessedMut(eventID string, _ time.Time) *spanner.Mutation {
	return r.s.token(func() {
		for i := range r.s.outbox {
			if r.s.outbox[i].EventID == eventID {
				r.s.outbox[i].Status = contracts.OutboxStatusProcessed
			}
		}
	})
}

// FindPendingEvents implements contracts.OutboxSource in insertion order.
func (s *Store) FindPendingEvents(ctx context.Context, limit int) ([]contracts.OutboxEvent, error) {
	if err := s.readErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []contracts.OutboxEvent
	for _, e := range s.outbox {
		if len(out) >= limit {
			break
		}
		if e.Status == contracts.OutboxStatusPending {
			out = append(out, e)
		}
	}
	return out, nil
}

// Read side.

func (s *Store) readErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.ReadErr
}

func (s *Store) matching(filter contracts.ProductFilter) []productRow {
	rows := make([]productRow, 0, len(s.products))
	for _, r := range s.products {
		if filter.OwnerID != "" && r.ownerID != filter.OwnerID {
			continue
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	return rows
}

func (s *Store) CountProducts(ctx context.Context, filter contracts.ProductFilter) (int, error) {
	if err := s.readErr(ctx); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matching(filter)), nil
}

func (s *Store) FindProducts(ctx context.Context, filter contracts.ProductFilter, offset, limit int) ([]*domain.Product, error) {
	if err := s.readErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.matching(filter)
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + limit
	if limit < 0 || end > len(rows) {
		end = len(rows)
	}
	out := make([]*domain.Product, 0, end-offset)
	for _, r := range rows[offset:end] {
		out = append(out, r.product())
	}
	return out, nil
}

func (s *Store) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	if err := s.readErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return r.product(), nil
}

func (s *Store) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]*domain.Product, error) {
	if err := s.readErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]*domain.Product, len(productIDs))
	for _, id := range productIDs {
		if r, ok := s.products[id]; ok {
			out[id] = r.product()
		}
	}
	return out, nil
}

func (s *Store) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if err := s.readErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.carts[userID]
	if !ok {
		return domain.NewCart(userID), nil
	}
	return domain.ReconstructCart(userID, row.entries, row.updatedAt), nil
}

func (s *Store) FindOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	if err := s.readErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]orderRow, 0)
	for _, r := range s.orders {
		if r.order.UserID() == userID {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].order.CreatedAt(), rows[j].order.CreatedAt()
		if !a.Equal(b) {
			return a.After(b)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]*domain.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.order)
	}
	return out, nil
}

func (s *Store) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if err := s.readErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return r.order, nil
}

// Files.

func (s *Store) DeleteFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteFileErr != nil {
		return s.DeleteFileErr
	}
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *Store) Create(ctx context.Context, key string) (contracts.Sink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ArtifactErr != nil {
		return nil, s.ArtifactErr
	}
	sink := &BufferSink{WriteErr: s.ArtifactWrite, CommitErr: s.ArtifactCommit}
	sink.onCommit = func(b []byte) {
		s.mu.Lock()
		s.artifacts[key] = b
		s.mu.Unlock()
	}
	return sink, nil
}

var (
	_ contracts.Committer     = (*Store)(nil)
	_ contracts.ReadModel     = (*Store)(nil)
	_ contracts.FileStore     = (*Store)(nil)
	_ contracts.ArtifactStore = (*Store)(nil)
	_ contracts.OutboxSource  = (*Store)(nil)
)
