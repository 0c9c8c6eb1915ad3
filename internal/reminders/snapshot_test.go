package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/patramworks/patram/internal/models"
)

type fnClientSrc func(ctx context.Context) ([]*models.Client, error)

func (f fnClientSrc) List(ctx context.Context) ([]*models.Client, error) { return f(ctx) }

type fnOrderSrc func(ctx context.Context, since time.Time) ([]*models.Order, error)

func (f fnOrderSrc) ListSince(ctx context.Context, since time.Time) ([]*models.Order, error) {
	return f(ctx, since)
}

func fixedClients(clients ...*models.Client) fnClientSrc {
	return func(context.Context) ([]*models.Client, error) { return clients, nil }
}

func fixedOrders(orders ...*models.Order) fnOrderSrc {
	return func(context.Context, time.Time) ([]*models.Order, error) { return orders, nil }
}

func newTestSnapshot(clients fnClientSrc, orders fnOrderSrc, now time.Time) *Snapshot {
	snap := NewSnapshot(clients, orders, NewPrefStore(&stubPrefRepo{}), zap.NewNop())
	snap.now = func() time.Time { return now }
	return snap
}

func TestSnapshotLoadAndRows(t *testing.T) {
	now := ts("2024-06-15T10:00:00Z")
	alice := newClient("Alice")
	snap := newTestSnapshot(
		fixedClients(alice),
		fixedOrders(newOrder("Alice", ts("2024-06-01T00:00:00Z"))),
		now,
	)

	require.NoError(t, snap.Load(context.Background()))
	assert.Empty(t, snap.LastError())

	rows := snap.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].ClientName)
	assert.Equal(t, models.DueUpcoming, rows[0].DueLabel)
}

func TestSnapshotLoadFailureKeepsPreviousData(t *testing.T) {
	now := ts("2024-06-15T10:00:00Z")
	alice := newClient("Alice")

	clientErr := errors.New("clients unavailable")
	failing := false
	clients := fnClientSrc(func(context.Context) ([]*models.Client, error) {
		if failing {
			return nil, clientErr
		}
		return []*models.Client{alice}, nil
	})
	snap := newTestSnapshot(clients, fixedOrders(), now)

	require.NoError(t, snap.Load(context.Background()))
	require.Len(t, snap.Rows(), 1)

	failing = true
	err := snap.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, clientErr)

	// Stale beats empty: prior rows survive, error is recorded.
	assert.Len(t, snap.Rows(), 1)
	assert.Contains(t, snap.LastError(), "clients unavailable")
}

func TestSnapshotReloadOrdersClearsError(t *testing.T) {
	now := ts("2024-06-15T10:00:00Z")
	alice := newClient("Alice")

	orderErr := errors.New("orders unavailable")
	failing := true
	orders := fnOrderSrc(func(context.Context, time.Time) ([]*models.Order, error) {
		if failing {
			return nil, orderErr
		}
		return []*models.Order{newOrder("Alice", ts("2024-06-01T00:00:00Z"))}, nil
	})
	snap := newTestSnapshot(fixedClients(alice), orders, now)

	require.Error(t, snap.ReloadOrders(context.Background()))
	assert.NotEmpty(t, snap.LastError())

	failing = false
	require.NoError(t, snap.ReloadOrders(context.Background()))
	assert.Empty(t, snap.LastError())

	rows := snap.Rows()
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].LastOrderAt)
}

func TestSnapshotSupersededReloadIsDiscarded(t *testing.T) {
	now := ts("2024-06-15T10:00:00Z")
	alice := newClient("Alice")

	staleOrder := newOrder("Alice", ts("2024-05-01T00:00:00Z"))
	freshOrder := newOrder("Alice", ts("2024-06-10T00:00:00Z"))

	var snap *Snapshot
	call := 0
	orders := fnOrderSrc(func(ctx context.Context, since time.Time) ([]*models.Order, error) {
		call++
		if call == 1 {
			// A newer reload starts and finishes while this fetch is still
			// in flight; the in-flight result must be thrown away.
			require.NoError(t, snap.ReloadOrders(ctx))
			return []*models.Order{staleOrder}, nil
		}
		return []*models.Order{freshOrder}, nil
	})

	snap = newTestSnapshot(fixedClients(alice), orders, now)
	require.NoError(t, snap.ReloadOrders(context.Background()))

	rows := snap.Rows()
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].LastOrderAt)
	assert.Equal(t, freshOrder.OrderDate, *rows[0].LastOrderAt,
		"superseded fetch result overwrote a newer one")
}

func TestSnapshotFullReplaceDropsRemovedClients(t *testing.T) {
	now := ts("2024-06-15T10:00:00Z")
	alice, bob := newClient("Alice"), newClient("Bob")

	current := []*models.Client{alice, bob}
	clients := fnClientSrc(func(context.Context) ([]*models.Client, error) { return current, nil })
	snap := newTestSnapshot(clients, fixedOrders(), now)

	require.NoError(t, snap.Load(context.Background()))
	assert.Len(t, snap.Rows(), 2)

	current = []*models.Client{bob}
	require.NoError(t, snap.Load(context.Background()))
	rows := snap.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Bob", rows[0].ClientName)
}
