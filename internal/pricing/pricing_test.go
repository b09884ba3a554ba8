package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"warsztat/internal/models"
)

func part(price float64) *models.Part {
	return &models.Part{ID: 1, Name: "Filtr oleju", UnitPrice: price}
}

func TestTaskCost_LaborOnly(t *testing.T) {
	task := models.ServiceTask{LaborCost: 150}
	assert.Equal(t, 150.0, TaskCost(task))
}

func TestTaskCost_LaborPlusParts(t *testing.T) {
	task := models.ServiceTask{
		LaborCost: 100,
		UsedParts: []models.UsedPart{
			{Quantity: 2, Part: part(50)},
			{Quantity: 1, Part: part(19.99)},
		},
	}
	assert.InDelta(t, 219.99, TaskCost(task), 1e-9)
}

func TestTaskCost_NilPartContributesZero(t *testing.T) {
	task := models.ServiceTask{
		LaborCost: 80,
		UsedParts: []models.UsedPart{
			{Quantity: 3, Part: nil},
			{Quantity: 2, Part: part(10)},
		},
	}
	assert.InDelta(t, 100.0, TaskCost(task), 1e-9)
}

func TestPartsCost(t *testing.T) {
	task := models.ServiceTask{
		LaborCost: 500,
		UsedParts: []models.UsedPart{{Quantity: 4, Part: part(25)}},
	}
	assert.InDelta(t, 100.0, PartsCost(task), 1e-9)
}

func TestOrderCost_NoTasks(t *testing.T) {
	assert.Equal(t, 0.0, OrderCost(models.ServiceOrder{}))
}

func TestOrderCost_SumsTasks(t *testing.T) {
	order := models.ServiceOrder{
		Tasks: []models.ServiceTask{
			{LaborCost: 100, UsedParts: []models.UsedPart{{Quantity: 2, Part: part(50)}}},
			{LaborCost: 40},
		},
	}
	assert.InDelta(t, 240.0, OrderCost(order), 1e-9)
}

// Labor 100.00 plus 2 x 50.00 must come to exactly 200.00.
func TestOrderCost_LaborPlusTwoParts(t *testing.T) {
	order := models.ServiceOrder{
		Tasks: []models.ServiceTask{
			{LaborCost: 100.00, UsedParts: []models.UsedPart{{Quantity: 2, Part: part(50.00)}}},
		},
	}
	assert.Equal(t, 200.00, OrderCost(order))
}

func TestOrdersTotal(t *testing.T) {
	orders := []models.ServiceOrder{
		{Tasks: []models.ServiceTask{{LaborCost: 10}}},
		{Tasks: []models.ServiceTask{{LaborCost: 20, UsedParts: []models.UsedPart{{Quantity: 1, Part: part(5)}}}}},
	}
	assert.InDelta(t, 35.0, OrdersTotal(orders), 1e-9)
}
