package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dashly/sales-analytics-api/internal/domain"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return parsed
}

func rec(t *testing.T, date, sku string, qty int, revenue float64) domain.SalesRecord {
	t.Helper()
	return domain.SalesRecord{
		Date:          day(t, date),
		SKU:           sku,
		Title:         sku,
		Qty:           qty,
		Revenue:       revenue,
		CommissionPct: 0.15,
		Platform:      domain.PlatformUnknown,
	}
}
