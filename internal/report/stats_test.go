package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warsztat/internal/models"
)

func mech(id int64, first, last string) *models.User {
	return &models.User{ID: id, FirstName: first, LastName: last, Role: models.RoleMechanic}
}

func orderWith(status models.OrderStatus, m *models.User, labor float64) models.ServiceOrder {
	o := models.ServiceOrder{
		Status: status,
		Tasks:  []models.ServiceTask{{LaborCost: labor}},
	}
	if m != nil {
		o.Mechanic = m
		o.MechanicID = &m.ID
	}
	return o
}

func TestStatusDistribution_AllStatusesPresent(t *testing.T) {
	orders := []models.ServiceOrder{
		orderWith(models.StatusNew, nil, 0),
		orderWith(models.StatusNew, nil, 0),
		orderWith(models.StatusCompleted, nil, 0),
	}
	dist := StatusDistribution(orders)

	assert.Len(t, dist, 4)
	assert.Equal(t, models.StatusNew, dist[0].Status)
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, models.StatusInProgress, dist[1].Status)
	assert.Equal(t, 0, dist[1].Count)
	assert.Equal(t, 1, dist[2].Count)
	assert.Equal(t, 0, dist[3].Count)
}

func TestStatusDistribution_Empty(t *testing.T) {
	dist := StatusDistribution(nil)
	assert.Len(t, dist, 4)
	for _, sc := range dist {
		assert.Zero(t, sc.Count)
	}
}

func TestMechanicBreakdown_SortedByRevenueDesc(t *testing.T) {
	a := mech(1, "Jan", "Kowalski")
	b := mech(2, "Anna", "Nowak")
	orders := []models.ServiceOrder{
		orderWith(models.StatusCompleted, a, 100),
		orderWith(models.StatusCompleted, b, 300),
		orderWith(models.StatusCompleted, a, 50),
	}

	out := MechanicBreakdown(orders)
	assert.Len(t, out, 2)
	assert.Equal(t, "Anna Nowak", out[0].Name)
	assert.InDelta(t, 300.0, out[0].Revenue, 1e-9)
	assert.InDelta(t, 300.0, out[0].AverageValue, 1e-9)
	assert.Equal(t, "Jan Kowalski", out[1].Name)
	assert.Equal(t, 2, out[1].Orders)
	assert.InDelta(t, 75.0, out[1].AverageValue, 1e-9)
}

func TestMechanicBreakdown_UnassignedBucket(t *testing.T) {
	orders := []models.ServiceOrder{orderWith(models.StatusNew, nil, 20)}
	out := MechanicBreakdown(orders)
	assert.Len(t, out, 1)
	assert.Equal(t, UnassignedLabel, out[0].Name)
}

func TestGroupByMechanic_PreservesEncounterOrder(t *testing.T) {
	a := mech(1, "Jan", "Kowalski")
	orders := []models.ServiceOrder{
		orderWith(models.StatusNew, nil, 0),
		orderWith(models.StatusNew, a, 0),
		orderWith(models.StatusInProgress, nil, 0),
	}

	names, groups := GroupByMechanic(orders)
	assert.Equal(t, []string{UnassignedLabel, "Jan Kowalski"}, names)
	assert.Len(t, groups[UnassignedLabel], 2)
	assert.Len(t, groups["Jan Kowalski"], 1)
}

func TestUrgentOrders_OverSevenWholeDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	fresh := models.ServiceOrder{ID: 1, CreatedAt: now.AddDate(0, 0, -3)}
	boundary := models.ServiceOrder{ID: 2, CreatedAt: now.AddDate(0, 0, -7)}
	old := models.ServiceOrder{ID: 3, CreatedAt: now.AddDate(0, 0, -8)}

	urgent := UrgentOrders([]models.ServiceOrder{fresh, boundary, old}, now)
	assert.Len(t, urgent, 1)
	assert.Equal(t, int64(3), urgent[0].ID)
}

func TestOrderAgeDays_TruncatesToWholeDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	o := models.ServiceOrder{CreatedAt: now.Add(-47 * time.Hour)}
	assert.Equal(t, 1, OrderAgeDays(o, now))
}
