package report

import (
	"sort"
	"time"

	"warsztat/internal/models"
	"warsztat/internal/pricing"
)

// UnassignedLabel is the bucket name for orders with no mechanic.
const UnassignedLabel = "Nieprzypisany"

// urgentAfterDays is how old an active order may get before the open
// orders report flags it.
const urgentAfterDays = 7

// StatusCount pairs a status with how many orders are in it.
type StatusCount struct {
	Status models.OrderStatus
	Count  int
}

// StatusDistribution counts orders per status. Every known status appears,
// zero counts included, in the fixed lifecycle order.
func StatusDistribution(orders []models.ServiceOrder) []StatusCount {
	counts := make(map[models.OrderStatus]int, 4)
	for _, o := range orders {
		counts[o.Status]++
	}
	out := make([]StatusCount, 0, 4)
	for _, s := range models.AllStatuses() {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	return out
}

// MechanicStats summarizes one mechanic's share of a month's work.
type MechanicStats struct {
	Name         string
	Orders       int
	Revenue      float64
	AverageValue float64
}

// MechanicBreakdown groups orders by assigned mechanic and computes order
// counts, revenue and the average order value per mechanic, sorted by
// revenue descending. Unassigned orders land in the UnassignedLabel bucket.
func MechanicBreakdown(orders []models.ServiceOrder) []MechanicStats {
	byName := make(map[string]*MechanicStats)
	var names []string
	for _, o := range orders {
		name := mechanicName(o)
		st, ok := byName[name]
		if !ok {
			st = &MechanicStats{Name: name}
			byName[name] = st
			names = append(names, name)
		}
		st.Orders++
		st.Revenue += pricing.OrderCost(o)
	}
	out := make([]MechanicStats, 0, len(names))
	for _, name := range names {
		st := byName[name]
		if st.Orders > 0 {
			st.AverageValue = st.Revenue / float64(st.Orders)
		}
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// GroupByMechanic buckets orders under each mechanic's display name,
// preserving the encounter order of both buckets and orders within them.
func GroupByMechanic(orders []models.ServiceOrder) ([]string, map[string][]models.ServiceOrder) {
	groups := make(map[string][]models.ServiceOrder)
	var names []string
	for _, o := range orders {
		name := mechanicName(o)
		if _, ok := groups[name]; !ok {
			names = append(names, name)
		}
		groups[name] = append(groups[name], o)
	}
	return names, groups
}

// UrgentOrders returns the orders older than seven whole days at now.
// Age is measured in whole days since creation, so day seven itself is
// not yet urgent.
func UrgentOrders(orders []models.ServiceOrder, now time.Time) []models.ServiceOrder {
	var out []models.ServiceOrder
	for _, o := range orders {
		if OrderAgeDays(o, now) > urgentAfterDays {
			out = append(out, o)
		}
	}
	return out
}

// OrderAgeDays returns the order's age in whole days at now.
func OrderAgeDays(o models.ServiceOrder, now time.Time) int {
	return int(now.Sub(o.CreatedAt).Hours() / 24)
}

func mechanicName(o models.ServiceOrder) string {
	if o.Mechanic == nil {
		return UnassignedLabel
	}
	return o.Mechanic.FullName()
}
