package reports

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Both query-string bounds are inclusive: an order created any time on the
// "to" day, down to the last second, must fall inside the window.
func TestDateRange_BoundsIncludeWholeDays(t *testing.T) {
	req := httptest.NewRequest("GET", "/reports/active?from=2025-01-31&to=2025-01-31", nil)
	from, to, err := dateRange(req)
	assert.NoError(t, err)
	if !assert.NotNil(t, from) || !assert.NotNil(t, to) {
		return
	}

	startOfDay := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)
	endOfDay := time.Date(2025, 1, 31, 23, 59, 59, 0, time.Local)

	// created exactly at the "from" date is in range
	assert.False(t, startOfDay.Before(*from))
	assert.False(t, startOfDay.After(*to))
	// created just before midnight on the "to" date is still in range
	assert.False(t, endOfDay.Before(*from))
	assert.False(t, endOfDay.After(*to))
}

func TestDateRange_NextDayExcluded(t *testing.T) {
	req := httptest.NewRequest("GET", "/reports/active?to=2025-01-31", nil)
	_, to, err := dateRange(req)
	assert.NoError(t, err)
	if !assert.NotNil(t, to) {
		return
	}

	nextMidnight := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	assert.True(t, nextMidnight.After(*to))
}

func TestDateRange_Unbounded(t *testing.T) {
	req := httptest.NewRequest("GET", "/reports/active", nil)
	from, to, err := dateRange(req)
	assert.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestDateRange_InvalidDate(t *testing.T) {
	req := httptest.NewRequest("GET", "/reports/active?from=31.01.2025", nil)
	_, _, err := dateRange(req)
	assert.Error(t, err)
}
