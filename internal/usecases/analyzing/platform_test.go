package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashly/sales-analytics-api/internal/domain"
)

func platformRec(t *testing.T, platform string, qty int, revenue float64) domain.SalesRecord {
	t.Helper()
	r := rec(t, "2024-01-01", "A", qty, revenue)
	r.Platform = platform
	return r
}

func TestPlatformStats(t *testing.T) {
	rows := []domain.SalesRecord{
		platformRec(t, "Wildberries", 3, 600),
		platformRec(t, "Wildberries", 1, 150),
		platformRec(t, "Ozon", 2, 250),
	}

	stats := platformStats(rows)
	require.Len(t, stats, 2)

	wb := stats["Wildberries"]
	assert.Equal(t, 750.0, wb.Revenue)
	assert.Equal(t, 4, wb.Orders)
	assert.Equal(t, 75.0, wb.RevenuePct)

	ozon := stats["Ozon"]
	assert.Equal(t, 250.0, ozon.Revenue)
	assert.Equal(t, 2, ozon.Orders)
	assert.Equal(t, 25.0, ozon.RevenuePct)
}

func TestPlatformStats_SharesSumToHundred(t *testing.T) {
	rows := []domain.SalesRecord{
		platformRec(t, "Wildberries", 1, 333),
		platformRec(t, "Ozon", 1, 333),
		platformRec(t, "Yandex Market", 1, 334),
	}

	var sum float64
	for _, s := range platformStats(rows) {
		sum += s.RevenuePct
	}
	assert.InDelta(t, 100.0, sum, 0.2)
}

func TestPlatformStats_ZeroTotal(t *testing.T) {
	rows := []domain.SalesRecord{
		platformRec(t, "Wildberries", 1, 0),
		platformRec(t, "Ozon", 1, 0),
	}

	for name, s := range platformStats(rows) {
		assert.Equal(t, 0.0, s.RevenuePct, name)
	}
}

func TestPlatformStats_Empty(t *testing.T) {
	assert.Empty(t, platformStats(nil))
}
