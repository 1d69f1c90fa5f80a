package clientview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-system/internal/domain"
)

func order(id int, status domain.Status, total float64, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:        id,
		Items:     []domain.OrderItem{{MenuItemID: 1, Name: "招牌牛肉飯", Price: total, Quantity: 1}},
		Total:     total,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestSeedThenApplyCreated(t *testing.T) {
	v := NewAdminView()
	now := time.Now()
	v.Seed([]domain.Order{order(1, domain.StatusPending, 58, now)})

	v.ApplyCreated(order(2, domain.StatusPending, 18, now.Add(time.Second)))
	assert.Len(t, v.Orders(), 2)

	// A duplicate creation event must not clobber the cached record.
	changed := order(2, domain.StatusCompleted, 999, now)
	v.ApplyCreated(changed)
	orders := v.Orders()
	require.Len(t, orders, 2)
	for _, o := range orders {
		if o.ID == 2 {
			assert.Equal(t, domain.StatusPending, o.Status)
			assert.Equal(t, 18.0, o.Total)
		}
	}
}

func TestApplyUpdatedReplacesWholeRecord(t *testing.T) {
	v := NewAdminView()
	now := time.Now()
	v.Seed([]domain.Order{order(1, domain.StatusPending, 58, now)})

	v.ApplyUpdated(order(1, domain.StatusPreparing, 58, now))
	orders := v.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusPreparing, orders[0].Status)
}

func TestApplyUpdatedIgnoresUnknownOrder(t *testing.T) {
	v := NewAdminView()
	v.ApplyUpdated(order(7, domain.StatusPreparing, 58, time.Now()))
	assert.Empty(t, v.Orders())
}

func TestApplyUpdatedIsIdempotent(t *testing.T) {
	v := NewAdminView()
	now := time.Now()
	v.Seed([]domain.Order{order(1, domain.StatusPending, 58, now)})

	update := order(1, domain.StatusPreparing, 58, now)
	v.ApplyUpdated(update)
	once := v.Orders()
	onceStats := v.Stats()

	v.ApplyUpdated(update)
	assert.Equal(t, once, v.Orders())
	assert.Equal(t, onceStats, v.Stats())
}

func TestOrdersSortedNewestFirst(t *testing.T) {
	v := NewAdminView()
	now := time.Now()
	v.Seed([]domain.Order{
		order(1, domain.StatusPending, 58, now.Add(-2*time.Minute)),
		order(2, domain.StatusPending, 18, now),
		order(3, domain.StatusPending, 28, now.Add(-time.Minute)),
	})

	orders := v.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestStatsRecomputedFromCache(t *testing.T) {
	v := NewAdminView()
	now := time.Now()
	v.Seed([]domain.Order{
		order(1, domain.StatusPending, 58, now),
		order(2, domain.StatusPending, 52, now),
		order(3, domain.StatusPreparing, 28, now),
		order(4, domain.StatusCompleted, 18, now),
	})

	assert.Equal(t, Stats{Pending: 2, Preparing: 1, Revenue: 156}, v.Stats())

	v.ApplyUpdated(order(1, domain.StatusPreparing, 58, now))
	assert.Equal(t, Stats{Pending: 1, Preparing: 2, Revenue: 156}, v.Stats())
}
