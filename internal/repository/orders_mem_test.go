package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-system/internal/domain"
)

func sampleItems() []domain.OrderItem {
	return []domain.OrderItem{{MenuItemID: 1, Name: "招牌牛肉飯", Price: 58, Quantity: 1}}
}

func TestAddOrderAssignsSequentialIDs(t *testing.T) {
	repo := NewOrderRepository()

	first := repo.AddOrder(sampleItems(), 58)
	second := repo.AddOrder(sampleItems(), 58)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, domain.StatusPending, first.Status)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestAddOrderConcurrentIDsUnique(t *testing.T) {
	repo := NewOrderRepository()
	const n = 200

	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- repo.AddOrder(sampleItems(), 58).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Len(t, repo.GetAllOrders(), n)
}

func TestGetAllOrdersInsertionOrder(t *testing.T) {
	repo := NewOrderRepository()
	repo.AddOrder(sampleItems(), 58)
	repo.AddOrder(sampleItems(), 58)
	repo.AddOrder(sampleItems(), 58)

	all := repo.GetAllOrders()
	require.Len(t, all, 3)
	for i, o := range all {
		assert.Equal(t, i+1, o.ID)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	repo := NewOrderRepository()
	_, err := repo.GetOrder(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := NewOrderRepository()
	order := repo.AddOrder(sampleItems(), 58)

	updated, err := repo.UpdateStatus(order.ID, domain.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)

	updated, err = repo.UpdateStatus(order.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	stored, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
}

func TestUpdateStatusRejectsIllegalMoves(t *testing.T) {
	repo := NewOrderRepository()
	order := repo.AddOrder(sampleItems(), 58)

	_, err := repo.UpdateStatus(order.ID, domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = repo.UpdateStatus(order.ID, domain.StatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Failed transitions must not change the record.
	stored, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	repo := NewOrderRepository()
	_, err := repo.UpdateStatus(7, domain.StatusPreparing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddOrderSnapshotsItems(t *testing.T) {
	repo := NewOrderRepository()
	items := sampleItems()
	order := repo.AddOrder(items, 58)

	// Mutating the caller's slice must not reach the stored record.
	items[0].Price = 999
	stored, err := repo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 58.0, stored.Items[0].Price)
}
