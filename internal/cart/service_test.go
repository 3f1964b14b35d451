package cart

import (
	"context"
	"sync"
	"testing"

	"digipasal-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotRepo records every persisted snapshot so tests can compare the
// stored state against the in-memory collection.
type snapshotRepo struct {
	mu        sync.Mutex
	snapshots map[string][]LineItem
	saves     int
}

func newSnapshotRepo() *snapshotRepo {
	return &snapshotRepo{snapshots: make(map[string][]LineItem)}
}

func (r *snapshotRepo) SaveSnapshot(ctx context.Context, userID string, items []LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]LineItem, len(items))
	copy(stored, items)
	r.snapshots[userID] = stored
	r.saves++
	return nil
}

func (r *snapshotRepo) LoadSnapshot(ctx context.Context, userID string) ([]LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if items, ok := r.snapshots[userID]; ok {
		out := make([]LineItem, len(items))
		copy(out, items)
		return out, nil
	}
	return []LineItem{}, nil
}

func (r *snapshotRepo) DeleteSnapshot(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, userID)
	return nil
}

func (r *snapshotRepo) stored(userID string) []LineItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshots[userID]
}

var (
	p1 = product.Product{ID: "p1", Title: "Netflix Premium", Price: 500}
	p2 = product.Product{ID: "p2", Title: "Spotify Premium", Price: 300}
)

func TestService_Add_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newSnapshotRepo()
	svc := NewService(repo)

	items, err := svc.Add(ctx, "u1", p1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	// Adding the same product again must not create a duplicate entry
	// or touch the quantity.
	items, err = svc.Add(ctx, "u1", p1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestService_Add_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newSnapshotRepo())

	_, err := svc.Add(ctx, "", p1)
	assert.ErrorIs(t, err, ErrUserRequired)

	_, err = svc.Add(ctx, "u1", product.Product{})
	assert.ErrorIs(t, err, ErrProductRequired)
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	repo := newSnapshotRepo()
	svc := NewService(repo)

	_, err := svc.Add(ctx, "u1", p1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", p2)
	require.NoError(t, err)

	items, err := svc.Remove(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	// Removing an absent product is a no-op, not an error.
	items, err = svc.Remove(ctx, "u1", "ghost")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestService_SetQuantity(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newSnapshotRepo())

	_, err := svc.Add(ctx, "u1", p1)
	require.NoError(t, err)

	items, err := svc.SetQuantity(ctx, "u1", "p1", 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, int64(1500), Total(items))

	// Zero quantity removes the item.
	items, err = svc.SetQuantity(ctx, "u1", "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSnapshotRepo()
	svc := NewService(repo)

	ops := []func() ([]LineItem, error){
		func() ([]LineItem, error) { return svc.Add(ctx, "u1", p1) },
		func() ([]LineItem, error) { return svc.Add(ctx, "u1", p2) },
		func() ([]LineItem, error) { return svc.SetQuantity(ctx, "u1", "p2", 2) },
		func() ([]LineItem, error) { return svc.Remove(ctx, "u1", "p1") },
		func() ([]LineItem, error) { return svc.Add(ctx, "u1", p1) },
	}

	for i, op := range ops {
		items, err := op()
		require.NoError(t, err, "op %d", i)
		assert.Equal(t, items, repo.stored("u1"), "persisted snapshot must equal the in-memory collection after op %d", i)
	}

	// A fresh service restores the cart from the persisted snapshot.
	restoredSvc := NewService(repo)
	restored, err := restoredSvc.Get(ctx, "u1")
	require.NoError(t, err)
	last, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, last, restored)
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	repo := newSnapshotRepo()
	svc := NewService(repo)

	_, err := svc.Add(ctx, "u1", p1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "u1"))

	items, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, repo.stored("u1"))
}

func TestService_TotalsScenario(t *testing.T) {
	// Add p1 (500) and p2 (300): total 800. Remove p1: total 300.
	ctx := context.Background()
	svc := NewService(newSnapshotRepo())

	_, err := svc.Add(ctx, "u1", p1)
	require.NoError(t, err)
	items, err := svc.Add(ctx, "u1", p2)
	require.NoError(t, err)
	assert.Equal(t, int64(800), Total(items))

	items, err = svc.Remove(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(300), Total(items))
}

func TestService_RapidRepeatedAdds(t *testing.T) {
	// Idempotence under rapid repeated clicks.
	ctx := context.Background()
	svc := NewService(newSnapshotRepo())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Add(ctx, "u1", p1)
		}()
	}
	wg.Wait()

	items, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}
