// Package pricing computes labor and part costs over loaded order graphs.
// All functions are pure; missing references contribute zero.
package pricing

import "warsztat/internal/models"

// TaskCost returns the task's labor cost plus quantity times unit price for
// every used part. A used part without a resolved catalog part adds nothing.
func TaskCost(task models.ServiceTask) float64 {
	cost := task.LaborCost
	for _, up := range task.UsedParts {
		if up.Part == nil {
			continue
		}
		cost += float64(up.Quantity) * up.Part.UnitPrice
	}
	return cost
}

// PartsCost returns only the parts portion of a task's cost.
func PartsCost(task models.ServiceTask) float64 {
	var cost float64
	for _, up := range task.UsedParts {
		if up.Part == nil {
			continue
		}
		cost += float64(up.Quantity) * up.Part.UnitPrice
	}
	return cost
}

// OrderCost sums TaskCost over every task of the order.
func OrderCost(order models.ServiceOrder) float64 {
	var cost float64
	for _, t := range order.Tasks {
		cost += TaskCost(t)
	}
	return cost
}

// OrdersTotal sums OrderCost over a slice of orders.
func OrdersTotal(orders []models.ServiceOrder) float64 {
	var total float64
	for _, o := range orders {
		total += OrderCost(o)
	}
	return total
}
