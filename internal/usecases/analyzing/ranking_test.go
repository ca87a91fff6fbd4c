package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashly/sales-analytics-api/internal/domain"
)

func TestTopProducts_GroupingAndOrder(t *testing.T) {
	rows := []domain.SalesRecord{
		rec(t, "2024-01-01", "A", 3, 300),
		rec(t, "2024-01-02", "B", 10, 100),
		rec(t, "2024-01-02", "A", 4, 400),
		rec(t, "2024-01-03", "C", 1, 200),
	}

	top := topProducts(rows, 5)
	require.Len(t, top, 3)

	assert.Equal(t, "B", top[0].SKU)
	assert.Equal(t, 10, top[0].Qty)
	assert.Equal(t, "A", top[1].SKU)
	assert.Equal(t, 7, top[1].Qty)
	assert.Equal(t, 700.0, top[1].Revenue)
	assert.Equal(t, "C", top[2].SKU)

	// shares are against total revenue: 100 + 700 + 200 = 1000
	assert.Equal(t, 10.0, top[0].RevenuePct)
	assert.Equal(t, 70.0, top[1].RevenuePct)
	assert.Equal(t, 20.0, top[2].RevenuePct)
}

func TestTopProducts_TruncationKeepsFullDenominator(t *testing.T) {
	rows := []domain.SalesRecord{
		rec(t, "2024-01-01", "A", 5, 500),
		rec(t, "2024-01-01", "B", 4, 300),
		rec(t, "2024-01-01", "C", 3, 200),
	}

	top := topProducts(rows, 2)
	require.Len(t, top, 2)

	var sum float64
	for _, p := range top {
		sum += p.RevenuePct
	}
	assert.Equal(t, 80.0, sum)
}

func TestTopProducts_ZeroTotalRevenue(t *testing.T) {
	rows := []domain.SalesRecord{
		rec(t, "2024-01-01", "A", 2, 0),
		rec(t, "2024-01-01", "B", 1, 0),
	}

	top := topProducts(rows, 5)
	require.Len(t, top, 2)
	assert.Equal(t, 0.0, top[0].RevenuePct)
	assert.Equal(t, 0.0, top[1].RevenuePct)
}

func TestTopProducts_StableTieOrder(t *testing.T) {
	rows := []domain.SalesRecord{
		rec(t, "2024-01-01", "first", 2, 10),
		rec(t, "2024-01-01", "second", 2, 10),
		rec(t, "2024-01-01", "third", 2, 10),
	}

	top := topProducts(rows, 5)
	require.Len(t, top, 3)
	assert.Equal(t, "first", top[0].SKU)
	assert.Equal(t, "second", top[1].SKU)
	assert.Equal(t, "third", top[2].SKU)
}

func TestTopProducts_SKUAndTitleFormDistinctGroups(t *testing.T) {
	a := rec(t, "2024-01-01", "A", 1, 100)
	a.Title = "Кружка"
	b := rec(t, "2024-01-01", "A", 1, 100)
	b.Title = "Кружка синяя"

	top := topProducts([]domain.SalesRecord{a, b}, 5)
	assert.Len(t, top, 2)
}

func TestTopProducts_Empty(t *testing.T) {
	assert.Empty(t, topProducts(nil, 5))
}
